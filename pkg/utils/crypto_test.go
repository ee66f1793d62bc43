package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestCheckPasswordHash(t *testing.T) {
	password := "my-secure-password"
	wrongPassword := "wrong-password"
	hash, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hash))
	assert.False(t, CheckPasswordHash(wrongPassword, hash))
}

func TestGenerateAPIKey(t *testing.T) {
	key := GenerateAPIKey("alice", "pw1", "server-salt")

	// SHA-256 hex digest
	assert.Len(t, key, 64)
	assert.Regexp(t, "^[0-9a-f]+$", key)
}

func TestGenerateAPIKeySaltMatters(t *testing.T) {
	a := GenerateAPIKey("alice", "pw1", "salt-a")
	b := GenerateAPIKey("alice", "pw1", "salt-b")

	assert.NotEqual(t, a, b)
}
