package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	Name         string    `gorm:"size:120"`
	ImageURL     string    `gorm:"size:512"`
	Role         Role      `gorm:"size:32;not null;default:customer"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	LastLoggedIn time.Time `gorm:"column:last_logged_in"`
}

func (User) TableName() string {
	return "users"
}
