package logic

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/mr-tron/base58"
	"gorm.io/gorm"

	"github.com/Ramcharan1706/SkillSwap/config"
	"github.com/Ramcharan1706/SkillSwap/models"
)

// UserLogic handles user registration, lookup and authentication
type UserLogic struct {
	userDAO UserStore
}

func NewUserLogic(userDAO UserStore) *UserLogic {
	return &UserLogic{userDAO: userDAO}
}

// Register creates a new user with zero reputation and balance. The caller
// proves control of the public key by signing the given message.
func (l *UserLogic) Register(publicKey, name, message, signature string) (*models.User, string, time.Time, error) {
	isValid, err := l.verifySignature(publicKey, message, signature)
	if err != nil || !isValid {
		return nil, "", time.Time{}, ErrInvalidSignature
	}

	if _, err := l.userDAO.GetUserByPublicKey(publicKey); err == nil {
		return nil, "", time.Time{}, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", time.Time{}, err
	}

	user, err := l.userDAO.CreateUser(publicKey, name)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expireAt, err := l.generateJWT(publicKey)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expireAt, nil
}

// Login authenticates an already registered user and issues a JWT
func (l *UserLogic) Login(publicKey, message, signature string) (*models.User, string, time.Time, error) {
	isValid, err := l.verifySignature(publicKey, message, signature)
	if err != nil || !isValid {
		return nil, "", time.Time{}, ErrInvalidSignature
	}

	user, err := l.GetUser(publicKey)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expireAt, err := l.generateJWT(publicKey)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expireAt, nil
}

// GetUser retrieves a user record
func (l *UserLogic) GetUser(publicKey string) (*models.User, error) {
	return getUser(l.userDAO, publicKey)
}

// getUser maps a missing user record to ErrNotRegistered
func getUser(store UserStore, publicKey string) (*models.User, error) {
	user, err := store.GetUserByPublicKey(publicKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}
	return user, nil
}

// GetReputation retrieves a user's reputation score
func (l *UserLogic) GetReputation(publicKey string) (uint64, error) {
	user, err := l.GetUser(publicKey)
	if err != nil {
		return 0, err
	}
	return user.Reputation, nil
}

// GetBalance retrieves a user's internal token balance
func (l *UserLogic) GetBalance(publicKey string) (uint64, error) {
	user, err := l.GetUser(publicKey)
	if err != nil {
		return 0, err
	}
	return user.Tokens, nil
}

func (l *UserLogic) verifySignature(publicKey, message, signature string) (bool, error) {
	pubKeyBytes, err := base58.Decode(publicKey)
	if err != nil {
		return false, err
	}
	if len(pubKeyBytes) != 32 {
		return false, fmt.Errorf("ed25519: bad public key length: %d", len(pubKeyBytes))
	}

	sigBytes, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, err
	}

	return ed25519.Verify(pubKeyBytes, []byte(message), sigBytes), nil
}

func (l *UserLogic) generateJWT(publicKey string) (string, time.Time, error) {
	expireAt := time.Now().Add(time.Duration(config.GlobalConfig.Auth.ExpHour) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_pubkey": publicKey,
		"exp":         expireAt.Unix(),
	})
	tokenString, err := token.SignedString([]byte(config.GlobalConfig.Auth.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expireAt, nil
}
