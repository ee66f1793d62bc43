package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateAPIKey derives an opaque token from the caller's identity, the
// microsecond component of the current time and a deployment-wide salt.
// The salt keeps issued tokens unpredictable to anyone without the server
// configuration.
func GenerateAPIKey(username, password, salt string) string {
	micros := time.Now().Nanosecond() / 1000
	sum := sha256.Sum256([]byte(username + password + strconv.Itoa(micros) + salt))
	return hex.EncodeToString(sum[:])
}
