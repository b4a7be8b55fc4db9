package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ramcharan1706/SkillSwap/models"
)

const ledgerStateID = 1

// StateDAO handles the scalar ledger state: the configured skill token and
// the skill/session ID counters.
type StateDAO struct {
	db *gorm.DB
}

func NewStateDAO(db *gorm.DB) *StateDAO {
	return &StateDAO{db: db}
}

// Init makes sure the single ledger state row exists
func (d *StateDAO) Init() error {
	state := models.LedgerState{ID: ledgerStateID, NextSkillID: 1, NextSessionID: 1}
	return d.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&state).Error
}

// NextSkillID allocates the next skill ID. The state row is locked for the
// duration of the increment, so IDs are strictly increasing and never reused.
func (d *StateDAO) NextSkillID() (uint64, error) {
	return d.nextID("next_skill_id")
}

// NextSessionID allocates the next session ID
func (d *StateDAO) NextSessionID() (uint64, error) {
	return d.nextID("next_session_id")
}

func (d *StateDAO) nextID(column string) (uint64, error) {
	var id uint64
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var state models.LedgerState
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&state, "id = ?", ledgerStateID).Error; err != nil {
			return err
		}
		switch column {
		case "next_skill_id":
			id = state.NextSkillID
		case "next_session_id":
			id = state.NextSessionID
		}
		return tx.Model(&models.LedgerState{}).
			Where("id = ?", ledgerStateID).
			Update(column, gorm.Expr(column+" + 1")).Error
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// SetSkillTokenID stores the fungible skill token asset ID
func (d *StateDAO) SetSkillTokenID(tokenID uint64) error {
	return d.db.Model(&models.LedgerState{}).
		Where("id = ?", ledgerStateID).
		Update("skill_token_id", tokenID).Error
}

// GetSkillTokenID retrieves the configured skill token asset ID
func (d *StateDAO) GetSkillTokenID() (uint64, error) {
	var state models.LedgerState
	if err := d.db.First(&state, "id = ?", ledgerStateID).Error; err != nil {
		return 0, err
	}
	return state.SkillTokenID, nil
}
