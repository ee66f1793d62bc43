package handlers

import (
	"log/slog"

	"github.com/bostrt/koala/internal/config"
	"github.com/bostrt/koala/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	db             *gorm.DB
	accountService *services.AccountService
	articleService *services.ArticleService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	accountService *services.AccountService,
	articleService *services.ArticleService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		accountService: accountService,
		articleService: articleService,
	}
}
