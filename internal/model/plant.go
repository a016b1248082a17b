package model

import "time"

type Plant struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:120;not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"size:64;index"`
	Price       float64   `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	ImageURL    string    `gorm:"size:512"`
	SellerName  string    `gorm:"size:120"`
	SellerEmail string    `gorm:"size:255;index"`
	SellerImage string    `gorm:"size:512"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Plant) TableName() string {
	return "plants"
}
