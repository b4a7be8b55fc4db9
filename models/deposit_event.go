package models

import "time"

// DepositEvent records a skill-token deposit observed on the ledger relay.
// The nostr event ID is the primary key, which keeps credit idempotent.
type DepositEvent struct {
	ID        string    `gorm:"primaryKey" json:"id"` // nostr event ID
	User      string    `gorm:"not null" json:"user"`
	Amount    uint64    `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
