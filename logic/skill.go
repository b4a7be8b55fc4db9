package logic

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/config"
	"github.com/Ramcharan1706/SkillSwap/models"
)

// SkillLogic handles the skill catalog and the admin skill-token setting
type SkillLogic struct {
	userDAO  UserStore
	skillDAO SkillStore
	stateDAO StateStore
}

func NewSkillLogic(userDAO UserStore, skillDAO SkillStore, stateDAO StateStore) *SkillLogic {
	return &SkillLogic{
		userDAO:  userDAO,
		skillDAO: skillDAO,
		stateDAO: stateDAO,
	}
}

// ListSkill creates a new skill listing for a registered teacher and returns
// its ID. IDs come from the ledger counter and are never reused, even when a
// later step fails.
func (l *SkillLogic) ListSkill(teacher, receiver, name, description string, hourlyRate uint64) (uint64, error) {
	if _, err := l.userDAO.GetUserByPublicKey(teacher); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotRegistered
		}
		return 0, err
	}

	skillID, err := l.stateDAO.NextSkillID()
	if err != nil {
		return 0, err
	}

	skill := &models.Skill{
		ID:          skillID,
		Teacher:     teacher,
		Receiver:    receiver,
		Name:        name,
		Description: description,
		HourlyRate:  hourlyRate,
		Available:   true,
	}
	if err := l.skillDAO.CreateSkill(skill); err != nil {
		return 0, err
	}
	return skillID, nil
}

// GetSkill retrieves a skill listing
func (l *SkillLogic) GetSkill(id uint64) (*models.Skill, error) {
	skill, err := l.skillDAO.GetSkillByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

// GetSkills retrieves the full catalog
func (l *SkillLogic) GetSkills() ([]models.Skill, error) {
	return l.skillDAO.GetAllSkills()
}

// SetAvailability toggles a skill's availability; only its teacher may do so
func (l *SkillLogic) SetAvailability(caller string, id uint64, available bool) error {
	skill, err := l.GetSkill(id)
	if err != nil {
		return err
	}
	if caller != skill.Teacher {
		return ErrUnauthorized
	}
	return l.skillDAO.SetAvailability(id, available)
}

// SetSkillToken configures the fungible skill-token asset ID; admin only
func (l *SkillLogic) SetSkillToken(caller string, tokenID uint64) error {
	if caller != config.GlobalConfig.Admin.Pubkey {
		return ErrUnauthorized
	}
	return l.stateDAO.SetSkillTokenID(tokenID)
}
