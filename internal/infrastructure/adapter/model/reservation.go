package model

import (
	"time"
)

// Reservation represents the database model for reservations
type Reservation struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index"`
	SlotID    uint64    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
	Slot Slot `gorm:"foreignKey:SlotID;references:ID"`
}

// TableName specifies the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}
