package handlers

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Identity-establishing routes; these are the only unauthenticated ones.
	r.POST("/users", h.RegisterUser)
	r.POST("/key", h.GenerateKey)

	articles := r.Group("/articles")
	articles.Use(h.RequireAuth())
	{
		articles.GET("", h.ListArticles)
		articles.POST("", h.AddArticle)
		articles.GET("/:id", h.GetArticle)
		articles.PUT("/:id", h.UpdateArticle)
		articles.DELETE("/:id", h.DeleteArticle)
	}

	return r
}
