package model

import (
	"time"
)

// Transaction represents the database model for the append-only payment log
type Transaction struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Reference      string    `gorm:"uniqueIndex;not null;size:64"`
	UserID         uint64    `gorm:"not null;index"`
	SlotID         uint64    `gorm:"not null;index"`
	Amount         int64     `gorm:"not null"` // Cents
	ApplicationFee int64     `gorm:"not null"` // Cents
	OwnerCredit    int64     `gorm:"not null"` // Cents
	CreatedAt      time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
	Slot Slot `gorm:"foreignKey:SlotID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
