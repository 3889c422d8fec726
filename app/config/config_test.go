package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestRead(t *testing.T) {
	input := `
[server]
addr = "127.0.0.1:9000"

[storage]
type = "sqlite"
path = "blog.db"

[log]
level = "debug"
format = "text"
`
	cfg, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "blog.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	// untouched sections keep their defaults
	assert.Equal(t, 30, cfg.Render.SummaryLength)
	assert.True(t, cfg.Render.EscapeHTML)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("[server\naddr ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"memory storage needs no path", func(c *Config) { c.Storage = StorageConfig{Type: "memory"} }, false},
		{"unknown storage type", func(c *Config) { c.Storage.Type = "postgres" }, true},
		{"badger without path", func(c *Config) { c.Storage.Path = "" }, true},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"zero summary length", func(c *Config) { c.Render.SummaryLength = 0 }, true},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteThenRead(t *testing.T) {
	cfg := Default()
	cfg.Storage = StorageConfig{Type: "sqlite", Path: "blog.db"}
	cfg.Render.EscapeHTML = false
	cfg.Log.File = "inkwell.log"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid file is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inkwell.toml")
		require.NoError(t, os.WriteFile(path, []byte("[storage]\ntype = \"redis\"\n"), 0644))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "inkwell.toml")
	require.NoError(t, Init(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = Init(path, Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
