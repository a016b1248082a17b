package model

import "time"

// SellerRequest is a pending customer→seller elevation. The unique index on
// email is what makes duplicate requests a conflict instead of a race.
type SellerRequest struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SellerRequest) TableName() string {
	return "seller_requests"
}
