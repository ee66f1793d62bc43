package handlers

import (
	"log/slog"
	"os"

	"github.com/bostrt/koala/internal/config"
	"github.com/bostrt/koala/internal/models"
	"github.com/bostrt/koala/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.APIKey{}, &models.Article{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		Salt: "test-salt",
	}

	accounts := services.NewAccountService(db, logger, cfg.Salt)
	articles := services.NewArticleService(db, logger)

	h := NewHandler(cfg, logger, db, accounts, articles)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter()
}
