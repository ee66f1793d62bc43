package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/bostrt/koala/internal/models"
	"github.com/bostrt/koala/pkg/utils"

	"gorm.io/gorm"
)

// AccountService owns user records and the API keys minted for them.
type AccountService struct {
	db     *gorm.DB
	logger *slog.Logger
	salt   string
}

func NewAccountService(db *gorm.DB, logger *slog.Logger, salt string) *AccountService {
	return &AccountService{db: db, logger: logger, salt: salt}
}

// Register creates a user and mints their first API key.
func (s *AccountService) Register(username, password string) (*models.User, *models.APIKey, error) {
	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, nil, ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two registrations can race past the lookup above; the unique
		// index still rejects the loser.
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, nil, ErrDuplicateUser
		}
		return nil, nil, err
	}

	key, err := s.mintKey(&user, password)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Warn("registered user", "username", user.Username)
	return &user, key, nil
}

// IssueKey mints an additional API key for a user who proves their password.
// Unknown usernames and wrong passwords are both reported as
// ErrBadCredentials so callers cannot probe which one failed.
func (s *AccountService) IssueKey(username, password string) (*models.User, *models.APIKey, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("key request for unknown user", "username", username)
			return nil, nil, ErrBadCredentials
		}
		return nil, nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.logger.Debug("key request with wrong password", "username", username)
		return nil, nil, ErrBadCredentials
	}

	key, err := s.mintKey(&user, password)
	if err != nil {
		return nil, nil, err
	}
	return &user, key, nil
}

func (s *AccountService) mintKey(user *models.User, password string) (*models.APIKey, error) {
	key := models.APIKey{
		Key:    utils.GenerateAPIKey(user.Username, password, s.salt),
		UserID: user.ID,
	}
	if err := s.db.Create(&key).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

// Authenticate resolves a claimed (username, key) pair to a user, or nil.
// The match is a single equality join across users and api_keys: a
// non-existent username and a wrong key produce the same empty result, so
// the caller learns nothing about which half was wrong.
func (s *AccountService) Authenticate(username, key string) *models.User {
	if username == "" || key == "" {
		s.logger.Info("authentication attempt with empty credentials")
		return nil
	}

	var user models.User
	err := s.db.
		Joins("JOIN api_keys ON api_keys.user_id = users.id").
		Where("users.username = ? AND api_keys.key = ?", username, key).
		First(&user).Error
	if err != nil {
		s.logger.Info("unable to locate user", "username", username)
		return nil
	}

	return &user
}
