package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocaesar/internal/config"
)

func valid() config.Config {
	return config.Config{
		Key:        "3",
		Parallel:   1,
		Extensions: []string{".txt"},
		Suffixes:   config.Suffixes{Encrypt: ".caesar"},
		Mode:       config.ModeEncrypt,
		Files:      []string{"."},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "key and key file",
			mutate:  func(c *config.Config) { c.KeyFile = "key.txt" },
			wantErr: "--key-file is mutually exclusive",
		},
		{
			name:    "missing key",
			mutate:  func(c *config.Config) { c.Key = "" },
			wantErr: "requires --key or --key-file",
		},
		{
			name: "analyse without key",
			mutate: func(c *config.Config) {
				c.Key = ""
				c.Mode = config.ModeAnalyse
			},
		},
		{
			name:    "zero parallel",
			mutate:  func(c *config.Config) { c.Parallel = 0 },
			wantErr: "--parallel must be 1 or greater",
		},
		{
			name:    "no files",
			mutate:  func(c *config.Config) { c.Files = nil },
			wantErr: "paths must contain at least 1 item",
		},
		{
			name:    "extension without dot",
			mutate:  func(c *config.Config) { c.Extensions = []string{"txt"} },
			wantErr: "--ext[0] must be a file extension",
		},
		{
			name:    "bare dot",
			mutate:  func(c *config.Config) { c.Extensions = []string{".md", "."} },
			wantErr: "--ext[1] must be a file extension",
		},
		{
			name:   "several extensions",
			mutate: func(c *config.Config) { c.Extensions = []string{".md", ".txt"} },
		},
		{
			name:   "any extension",
			mutate: func(c *config.Config) { c.Extensions = nil },
		},
		{
			name:    "unknown mode",
			mutate:  func(c *config.Config) { c.Mode = "rot13" },
			wantErr: "Mode must be one of [encrypt decrypt cryptanalyse]",
		},
		{
			name:    "delete without write",
			mutate:  func(c *config.Config) { c.Delete = true },
			wantErr: "--delete requires --write",
		},
		{
			name: "write analysis",
			mutate: func(c *config.Config) {
				c.Mode = config.ModeAnalyse
				c.Write = true
			},
			wantErr: "--write is not supported",
		},
		{
			name: "write with no suffixes",
			mutate: func(c *config.Config) {
				c.Write = true
				c.Suffixes = config.Suffixes{}
			},
			wantErr: "cannot both be empty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(&cfg)

			err := cfg.Validate(&cfg)

			if tc.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, config.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  int
		ok    bool
	}{
		{"3", 3, true},
		{"0", 0, true},
		{"-7", -7, true},
		{"0042", 42, true},
		{"123456789", 123456789, true},
		{"", 0, false},
		{"-", 0, false},
		{"+5", 0, false},
		{" 5", 0, false},
		{"5.0", 0, false},
		{"--5", 0, false},
		{"five", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tc := range tests {
		got, err := config.ParseKey(tc.token)

		if !tc.ok {
			assert.ErrorIs(t, err, config.ErrKeyParse, "ParseKey(%q)", tc.token)

			continue
		}

		if assert.NoError(t, err, "ParseKey(%q)", tc.token) {
			assert.Equal(t, tc.want, got, "ParseKey(%q)", tc.token)
		}
	}
}

func TestShow(t *testing.T) {
	t.Parallel()

	cfg := valid()
	assert.False(t, cfg.Display())

	cfg.Show = true
	assert.True(t, cfg.Display())
}

func TestResolveKeyFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("  -29\n"), 0o600))

	cfg := config.Config{KeyFile: path}

	key, err := cfg.ResolveKey()
	require.NoError(t, err)
	assert.Equal(t, -29, key)

	cfg.KeyFile = filepath.Join(t.TempDir(), "missing")
	_, err = cfg.ResolveKey()
	require.ErrorIs(t, err, os.ErrNotExist)
}
