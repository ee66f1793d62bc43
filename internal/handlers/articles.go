package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bostrt/koala/internal/services"

	"github.com/gin-gonic/gin"
)

type AddArticleRequest struct {
	URL   string `json:"url" binding:"required"`
	Title string `json:"title,omitempty"`
}

type UpdateArticleRequest struct {
	Read     *bool `json:"read,omitempty"`
	Favorite *bool `json:"favorite,omitempty"`
}

func ownerID(c *gin.Context) uint {
	return c.MustGet("user_id").(uint)
}

// articleID parses the :id path segment. Anything that is not a positive
// integer cannot name an article, so it reports not found rather than a
// malformed request.
func articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.List(ownerID(c))
	if err != nil {
		h.logger.Error("failed to list articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *Handler) GetArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.articleService.Get(ownerID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.logger.Error("failed to get article", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *Handler) AddArticle(c *gin.Context) {
	var req AddArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Create(ownerID(c), req.URL, req.Title)
	if err != nil {
		if errors.Is(err, services.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid url"})
			return
		}
		h.logger.Error("failed to add article", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add article"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": article.ID})
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Read == nil && req.Favorite == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	if _, err := h.articleService.SetFlags(ownerID(c), id, req.Read, req.Favorite); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.logger.Error("failed to update article", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(ownerID(c), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.logger.Error("failed to delete article", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete article"})
		return
	}

	c.Status(http.StatusNoContent)
}
