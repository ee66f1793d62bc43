package services

import (
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/bostrt/koala/internal/models"

	"gorm.io/gorm"
)

// ArticleService manages a user's bookmarks. Every query is scoped to the
// owning user; an article belonging to someone else is indistinguishable
// from one that does not exist.
type ArticleService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewArticleService(db *gorm.DB, logger *slog.Logger) *ArticleService {
	return &ArticleService{db: db, logger: logger}
}

func (s *ArticleService) List(ownerID uint) ([]models.Article, error) {
	var articles []models.Article
	if err := s.db.Where("user_id = ?", ownerID).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleService) Get(ownerID, id uint) (*models.Article, error) {
	var article models.Article
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Create stores a new bookmark. Input without a scheme is retried with an
// http:// prefix before being rejected, so bare domains like "example.com"
// are accepted. The title falls back to the normalized URL.
func (s *ArticleService) Create(ownerID uint, rawURL, title string) (*models.Article, error) {
	normalized, err := normalizeURL(rawURL)
	if err != nil {
		s.logger.Info("rejecting bad url", "url", rawURL)
		return nil, ErrInvalidURL
	}

	if title == "" {
		title = normalized
	}

	article := models.Article{
		Title:  title,
		URL:    normalized,
		Added:  time.Now(),
		UserID: ownerID,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleService) Delete(ownerID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Article{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetFlags applies a partial update to the read/favorite flags. A nil flag
// is left untouched; both may change in one call.
func (s *ArticleService) SetFlags(ownerID, id uint, read, favorite *bool) (*models.Article, error) {
	article, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if read != nil {
		updates["read"] = *read
	}
	if favorite != nil {
		updates["favorite"] = *favorite
	}
	if len(updates) == 0 {
		return article, nil
	}

	if err := s.db.Model(article).Updates(updates).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func normalizeURL(raw string) (string, error) {
	if isAbsoluteURL(raw) {
		return raw, nil
	}
	// Bare-domain input like "example.com" gets one retry with a scheme.
	prefixed := "http://" + raw
	if isAbsoluteURL(prefixed) {
		return prefixed, nil
	}
	return "", ErrInvalidURL
}

func isAbsoluteURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
