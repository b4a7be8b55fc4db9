package dao

import (
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/models"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser creates a new user with zero reputation and balance
func (d *UserDAO) CreateUser(publicKey, name string) (*models.User, error) {
	user := &models.User{PublicKey: publicKey, Name: name}
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByPublicKey retrieves a user by public key
func (d *UserDAO) GetUserByPublicKey(publicKey string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("public_key = ?", publicKey).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AddTokens adjusts a user's internal token balance
func (d *UserDAO) AddTokens(publicKey string, delta int64) error {
	return d.db.Model(&models.User{}).
		Where("public_key = ?", publicKey).
		Update("tokens", gorm.Expr("tokens + ?", delta)).Error
}

// TransferTokens moves tokens between two users in one transaction. It
// returns false when the sender's balance cannot cover the amount; in that
// case neither balance changes.
func (d *UserDAO) TransferTokens(sender, recipient string, amount uint64) (bool, error) {
	applied := false
	err := d.db.Transaction(func(tx *gorm.DB) error {
		debit := tx.Model(&models.User{}).
			Where("public_key = ? AND tokens >= ?", sender, amount).
			Update("tokens", gorm.Expr("tokens - ?", amount))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return nil
		}
		credit := tx.Model(&models.User{}).
			Where("public_key = ?", recipient).
			Update("tokens", gorm.Expr("tokens + ?", amount))
		if credit.Error != nil {
			return credit.Error
		}
		applied = true
		return nil
	})
	return applied, err
}
