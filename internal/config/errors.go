package config

import "errors"

var (
	// ErrInvalidInput is returned when the configuration or arguments are unusable.
	ErrInvalidInput = errors.New("invalid input")
	// ErrKeyParse is returned when a key token is not an integer.
	ErrKeyParse = errors.New("invalid key")
)
