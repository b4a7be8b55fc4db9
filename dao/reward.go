package dao

import (
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

// RewardDAO handles reward asset database operations
type RewardDAO struct {
	db *gorm.DB
}

func NewRewardDAO(db *gorm.DB) *RewardDAO {
	return &RewardDAO{db: db}
}

// CreateRewardAsset stores a freshly minted reward. The asset ID must not be
// tracked yet; the explicit existence check inside the transaction keeps a
// reward from ever being recorded twice.
func (d *RewardDAO) CreateRewardAsset(reward *models.RewardAsset) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RewardAsset{}).
			Where("asset_id = ?", reward.AssetID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(reward).Error
	})
}

// GetRewardAsset retrieves a reward by asset ID
func (d *RewardDAO) GetRewardAsset(assetID uint64) (*models.RewardAsset, error) {
	var reward models.RewardAsset
	if err := d.db.First(&reward, "asset_id = ?", assetID).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

// GetRewardsByOwner retrieves a user's rewards in the given state
func (d *RewardDAO) GetRewardsByOwner(owner, state string) ([]models.RewardAsset, error) {
	var rewards []models.RewardAsset
	if err := d.db.Where("owner = ? AND state = ?", owner, state).
		Order("asset_id").Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

// MarkRewardClaimed moves a reward from the owner's available set to the
// owned set. The update is conditional on the current state, so a claim can
// only ever succeed once; false means the reward was not available to claim.
func (d *RewardDAO) MarkRewardClaimed(assetID uint64, owner string) (bool, error) {
	res := d.db.Model(&models.RewardAsset{}).
		Where("asset_id = ? AND owner = ? AND state = ?", assetID, owner, models.RewardAvailable).
		Update("state", models.RewardOwned)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
