package dao

import (
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

// SkillDAO handles skill catalog database operations
type SkillDAO struct {
	db *gorm.DB
}

func NewSkillDAO(db *gorm.DB) *SkillDAO {
	return &SkillDAO{db: db}
}

// CreateSkill stores a new skill listing
func (d *SkillDAO) CreateSkill(skill *models.Skill) error {
	return d.db.Create(skill).Error
}

// GetSkillByID retrieves a skill by its ID
func (d *SkillDAO) GetSkillByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := d.db.First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetAllSkills retrieves every skill listing, newest first
func (d *SkillDAO) GetAllSkills() ([]models.Skill, error) {
	var skills []models.Skill
	if err := d.db.Order("id DESC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// SetAvailability toggles a skill's availability flag
func (d *SkillDAO) SetAvailability(id uint64, available bool) error {
	return d.db.Model(&models.Skill{}).
		Where("id = ?", id).
		Update("available", available).Error
}
