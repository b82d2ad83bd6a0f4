package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyramid.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "version: \"2\"\nseed: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, "2", cfg.Version)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "pyramid", cfg.Layout)
	assert.Equal(t, 13, cfg.Deck.MaxRank)
	assert.Equal(t, "SHDC", cfg.Deck.Suits)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Rules.RequireFaceUp)
}

func TestLoad_ReadsAllSections(t *testing.T) {
	body := `
layout: mini
deck:
  max_rank: 10
  suits: SH
rules:
  require_face_up: true
log:
  level: debug
  development: true
`
	cfg, err := Load(writeConfig(t, body))
	require.NoError(t, err)

	assert.Equal(t, "mini", cfg.Layout)
	assert.Equal(t, DeckShape{MaxRank: 10, Suits: "SH"}, cfg.Deck)
	assert.True(t, cfg.Rules.RequireFaceUp)
	assert.Equal(t, LogConfig{Level: "debug", Development: true}, cfg.Log)
}

func TestLoad_Rejects(t *testing.T) {
	_, err := Load(writeConfig(t, "deck:\n  max_rank: 1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "log:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "deck: [unclosed\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PYRAMID_LAYOUT", "mini")
	t.Setenv("PYRAMID_SEED", "99")
	t.Setenv("PYRAMID_LOG_LEVEL", "warn")
	t.Setenv("PYRAMID_REQUIRE_FACE_UP", "true")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "mini", cfg.Layout)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Rules.RequireFaceUp)
}

func TestApplyEnv_IgnoresMalformed(t *testing.T) {
	t.Setenv("PYRAMID_SEED", "abc")
	t.Setenv("PYRAMID_REQUIRE_FACE_UP", "maybe")

	cfg := Default()
	cfg.Seed = 5
	cfg.ApplyEnv()

	assert.Equal(t, int64(5), cfg.Seed)
	assert.False(t, cfg.Rules.RequireFaceUp)
}
