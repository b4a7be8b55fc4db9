package dao

import (
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

// DepositEventDAO handles deposit event storage
type DepositEventDAO struct {
	db *gorm.DB
}

func NewDepositEventDAO(db *gorm.DB) *DepositEventDAO {
	return &DepositEventDAO{db: db}
}

func (d *DepositEventDAO) SaveDepositEvent(event *models.DepositEvent) error {
	return d.db.Create(event).Error
}

func (d *DepositEventDAO) GetAllDepositEvents() ([]models.DepositEvent, error) {
	var events []models.DepositEvent
	if err := d.db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
