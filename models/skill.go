package models

import "time"

// Skill represents a teachable skill listed by a registered teacher
type Skill struct {
	ID          uint64    `gorm:"primaryKey" json:"id"` // assigned from the ledger counter, never reused
	Teacher     string    `gorm:"not null;index" json:"teacher"`
	Receiver    string    `json:"receiver,omitempty"` // optional payment receiver; escrow released here instead of the teacher when set
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	HourlyRate  uint64    `gorm:"not null" json:"hourly_rate"` // in skill tokens
	Available   bool      `gorm:"default:true" json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
