package model

import "time"

type OrderStatus string

const OrderStatusPending OrderStatus = "pending"

// Order snapshots plant and seller fields at purchase time so the row stays
// meaningful even if the plant record is later edited.
type Order struct {
	ID            uint64      `gorm:"primaryKey;autoIncrement"`
	PlantID       uint64      `gorm:"column:plant_id;index;not null"`
	TransactionID string      `gorm:"column:transaction_id;size:255;uniqueIndex;not null"`
	CustomerEmail string      `gorm:"column:customer_email;size:255;index;not null"`
	SellerName    string      `gorm:"size:120"`
	SellerEmail   string      `gorm:"size:255;index"`
	SellerImage   string      `gorm:"size:512"`
	Name          string      `gorm:"size:120"`
	ImageURL      string      `gorm:"size:512"`
	Category      string      `gorm:"size:64"`
	Status        OrderStatus `gorm:"size:32;not null;default:pending"`
	Quantity      int         `gorm:"not null"`
	Price         float64     `gorm:"not null"`
	CreatedAt     time.Time   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
