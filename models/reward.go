package models

import "time"

// Reward states. An available reward is held by the escrow account until the
// student claims it; an owned reward has been transferred to the student.
const (
	RewardAvailable = "available"
	RewardOwned     = "owned"
)

// RewardAsset tracks a minted proof-of-learning NFT. The asset ID is the
// primary key, so one reward can never appear in two sets or two users at once.
type RewardAsset struct {
	AssetID     uint64    `gorm:"primaryKey" json:"asset_id"` // minted by the asset service, globally unique
	Owner       string    `gorm:"not null;index" json:"owner"`
	State       string    `gorm:"not null" json:"state"`
	SessionID   uint64    `gorm:"not null" json:"session_id"` // provenance: the session or booking that produced it
	MetadataURL string    `json:"metadata_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
