package main_test

import (
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bostrt/koala/internal/client"
	"github.com/bostrt/koala/internal/config"
	"github.com/bostrt/koala/internal/handlers"
	"github.com/bostrt/koala/internal/repository"
	"github.com/bostrt/koala/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// startServer wires the whole stack against a real on-disk sqlite file, the
// same way cmd/server does.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.InitDB(filepath.Join(t.TempDir(), "koala.db"))
	if err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{Salt: "integration-salt"}
	accounts := services.NewAccountService(db, logger, cfg.Salt)
	articles := services.NewArticleService(db, logger)
	h := handlers.NewHandler(cfg, logger, db, accounts, articles)

	srv := httptest.NewServer(h.SetupRouter())
	t.Cleanup(srv.Close)
	return srv
}

func boolPtr(b bool) *bool { return &b }

func TestEndToEnd(t *testing.T) {
	srv := startServer(t)

	// Register alice and keep her key.
	alice := client.New(srv.URL)
	key, err := alice.Register("alice", "pw1")
	assert.NoError(t, err)
	assert.NotEmpty(t, key)
	alice.Username, alice.Key = "alice", key

	// Add an article.
	id, err := alice.AddArticle("http://x.test", "X")
	assert.NoError(t, err)

	// List shows exactly one unread, unfavorited article titled "X".
	articles, err := alice.ListArticles()
	assert.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, "X", articles[0].Title)
	assert.False(t, articles[0].Read)
	assert.False(t, articles[0].Favorite)

	// Mark it read; favorite stays unchanged.
	assert.NoError(t, alice.SetFlags(id, boolPtr(true), nil))

	article, err := alice.GetArticle(id)
	assert.NoError(t, err)
	assert.True(t, article.Read)
	assert.False(t, article.Favorite)
}

func TestEndToEndIsolationBetweenUsers(t *testing.T) {
	srv := startServer(t)

	alice := client.New(srv.URL)
	aliceKey, err := alice.Register("alice", "pw1")
	assert.NoError(t, err)
	alice.Username, alice.Key = "alice", aliceKey

	bob := client.New(srv.URL)
	bobKey, err := bob.Register("bob", "pw2")
	assert.NoError(t, err)
	bob.Username, bob.Key = "bob", bobKey

	id, err := alice.AddArticle("http://secret.test", "Secret")
	assert.NoError(t, err)

	// Bob cannot see, flag or delete alice's article; every path reports
	// not found rather than forbidden.
	articles, err := bob.ListArticles()
	assert.NoError(t, err)
	assert.Empty(t, articles)

	_, err = bob.GetArticle(id)
	assert.ErrorIs(t, err, client.ErrNotFound)

	assert.ErrorIs(t, bob.SetFlags(id, boolPtr(true), nil), client.ErrNotFound)
	assert.ErrorIs(t, bob.RemoveArticle(id), client.ErrNotFound)

	// Still there for alice.
	_, err = alice.GetArticle(id)
	assert.NoError(t, err)
}
