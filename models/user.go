package models

import (
	"time"
)

// User represents a registered marketplace participant
type User struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PublicKey  string    `gorm:"uniqueIndex;not null" json:"public_key"` // base58 wallet public key
	Name       string    `gorm:"not null" json:"name"`
	Reputation uint64    `gorm:"default:0" json:"reputation"` // only ever increases, by completed session hours
	Tokens     uint64    `gorm:"default:0" json:"tokens"`     // internal skill-token balance
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
