package dao

import (
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

// SessionDAO handles session database operations
type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{db: db}
}

// CreateSession stores a new session record
func (d *SessionDAO) CreateSession(session *models.Session) error {
	return d.db.Create(session).Error
}

// GetSessionByID retrieves a session by its ID
func (d *SessionDAO) GetSessionByID(id uint64) (*models.Session, error) {
	var session models.Session
	if err := d.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSessionsByUser retrieves sessions where the user is student or teacher
func (d *SessionDAO) GetSessionsByUser(publicKey string) ([]models.Session, error) {
	var sessions []models.Session
	if err := d.db.Where("student = ? OR teacher = ?", publicKey, publicKey).
		Order("id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateSessionStatus flips a session from one status to another. The update
// is conditional on the current status, so a transition can never be applied
// twice; false means the session was not in the expected status.
func (d *SessionDAO) UpdateSessionStatus(id uint64, from, to string) (bool, error) {
	res := d.db.Model(&models.Session{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CompleteSession flips a booked session to completed and credits the
// teacher's reputation with the session hours, both in one transaction.
// False means the session was not booked; neither write is applied then.
func (d *SessionDAO) CompleteSession(id uint64, teacher string, hours uint64) (bool, error) {
	completed := false
	err := d.db.Transaction(func(tx *gorm.DB) error {
		flip := tx.Model(&models.Session{}).
			Where("id = ? AND status = ?", id, models.SessionBooked).
			Update("status", models.SessionCompleted)
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return nil
		}
		if err := tx.Model(&models.User{}).
			Where("public_key = ?", teacher).
			Update("reputation", gorm.Expr("reputation + ?", hours)).Error; err != nil {
			return err
		}
		completed = true
		return nil
	})
	return completed, err
}
