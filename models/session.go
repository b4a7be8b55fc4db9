package models

import "time"

// Session status values. A session moves from booked to exactly one of
// completed or cancelled and never leaves a terminal state.
const (
	SessionBooked    = "booked"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// Session represents a time-boxed booking of a skill with tokens held in escrow
type Session struct {
	ID           uint64    `gorm:"primaryKey" json:"id"` // assigned from the ledger counter, never reused
	Student      string    `gorm:"not null;index" json:"student"`
	Teacher      string    `gorm:"not null;index" json:"teacher"` // copied from the skill at booking time
	SkillID      uint64    `gorm:"not null" json:"skill_id"`
	Hours        uint64    `gorm:"not null" json:"hours"`
	Status       string    `gorm:"not null" json:"status"`
	EscrowAmount uint64    `gorm:"not null" json:"escrow_amount"` // hours × hourly rate at booking time, immutable
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
