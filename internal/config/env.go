package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides file settings from PYRAMID_* environment variables.
// Unset or malformed values leave the current setting alone.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PYRAMID_LAYOUT"); v != "" {
		c.Layout = v
	}
	if v, ok := getEnvInt64("PYRAMID_SEED"); ok {
		c.Seed = v
	}
	if v := os.Getenv("PYRAMID_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PYRAMID_REQUIRE_FACE_UP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Rules.RequireFaceUp = b
		}
	}
}

func getEnvInt64(key string) (int64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
