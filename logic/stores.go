package logic

import (
	"github.com/Ramcharan1706/SkillSwap/models"
)

// Store interfaces the logic layer depends on. The dao package provides the
// gorm-backed implementations; tests substitute in-memory fakes.

type UserStore interface {
	CreateUser(publicKey, name string) (*models.User, error)
	GetUserByPublicKey(publicKey string) (*models.User, error)
	AddTokens(publicKey string, delta int64) error
	TransferTokens(sender, recipient string, amount uint64) (bool, error)
}

type SkillStore interface {
	CreateSkill(skill *models.Skill) error
	GetSkillByID(id uint64) (*models.Skill, error)
	GetAllSkills() ([]models.Skill, error)
	SetAvailability(id uint64, available bool) error
}

type SessionStore interface {
	CreateSession(session *models.Session) error
	GetSessionByID(id uint64) (*models.Session, error)
	GetSessionsByUser(publicKey string) ([]models.Session, error)
	UpdateSessionStatus(id uint64, from, to string) (bool, error)
	CompleteSession(id uint64, teacher string, hours uint64) (bool, error)
}

type RewardStore interface {
	CreateRewardAsset(reward *models.RewardAsset) error
	GetRewardAsset(assetID uint64) (*models.RewardAsset, error)
	GetRewardsByOwner(owner, state string) ([]models.RewardAsset, error)
	MarkRewardClaimed(assetID uint64, owner string) (bool, error)
}

type DepositStore interface {
	SaveDepositEvent(event *models.DepositEvent) error
	GetAllDepositEvents() ([]models.DepositEvent, error)
}

type StateStore interface {
	NextSkillID() (uint64, error)
	NextSessionID() (uint64, error)
	SetSkillTokenID(tokenID uint64) error
	GetSkillTokenID() (uint64, error)
}

// AssetService executes actual asset movement on the ledger. Calls either
// fully succeed or fail; the ledger only commits its own mutation after the
// corresponding asset call succeeded.
type AssetService interface {
	MintUniqueAsset(name, symbol, metadataURL string) (uint64, error)
	TransferAsset(assetID uint64, from, to string, amount uint64) error
}
