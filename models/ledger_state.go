package models

import "time"

// LedgerState is the single row of scalar ledger state: the configured skill
// token and the two allocation counters. Counters start at 1 and are
// post-incremented on every allocation, so IDs are never reused even when the
// operation that drew one later fails.
type LedgerState struct {
	ID            uint32    `gorm:"primaryKey" json:"id"`
	SkillTokenID  uint64    `gorm:"default:0" json:"skill_token_id"` // fungible asset ID, set by the admin
	NextSkillID   uint64    `gorm:"default:1" json:"next_skill_id"`
	NextSessionID uint64    `gorm:"default:1" json:"next_session_id"`
	UpdatedAt     time.Time `json:"updated_at"`
}
