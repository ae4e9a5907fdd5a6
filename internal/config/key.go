package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseKey converts a key token into an integer.
// Only an optional leading '-' followed by ASCII digits is accepted.
func ParseKey(token string) (int, error) {
	digits := strings.TrimPrefix(token, "-")

	if digits == "" {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrKeyParse, token)
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrKeyParse, token)
		}
	}

	key, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrKeyParse, token, err)
	}

	return key, nil
}

// ResolveKey returns the integer key from --key or the contents of --key-file.
// Surrounding whitespace in the key file is ignored.
func (c *Config) ResolveKey() (int, error) {
	token := c.Key

	if c.KeyFile != "" {
		data, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return 0, fmt.Errorf("reading key file: %w", err)
		}

		token = strings.TrimSpace(string(data))
	}

	return ParseKey(token)
}
