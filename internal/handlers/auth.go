package handlers

import (
	"errors"
	"net/http"

	"github.com/bostrt/koala/internal/services"

	"github.com/gin-gonic/gin"
)

type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a user and returns their first API key.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, key, err := h.accountService.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
		h.logger.Error("failed to register user", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"username": user.Username, "apikey": key.Key})
}

// GenerateKey mints an additional API key for a password-authenticated user.
// Unknown username and wrong password both come back as a bare 403.
func (h *Handler) GenerateKey(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, key, err := h.accountService.IssueKey(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid username or password"})
			return
		}
		h.logger.Error("failed to generate key", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate key"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"username": user.Username, "apikey": key.Key})
}
