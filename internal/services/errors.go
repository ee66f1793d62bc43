package services

import "errors"

var (
	ErrDuplicateUser  = errors.New("username already taken")
	ErrBadCredentials = errors.New("invalid username or password")
	ErrNotFound       = errors.New("article not found")
	ErrInvalidURL     = errors.New("invalid url")
)
