package model

import (
	"time"
)

// Slot represents the database model for parking slots
type Slot struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"not null;size:20;index"`
	OwnerID     *uint64   `gorm:"index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Owner *User `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName specifies the table name for Slot
func (Slot) TableName() string {
	return "parking_slots"
}
