package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/pathtools/pathops"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultPlatform is the grammar used when a tool call omits the
	// platform field.
	DefaultPlatform pathops.Platform

	// MaxOperands caps the number of paths accepted by join and combine.
	MaxOperands int

	// MaxPathLength caps the length of any single path operand.
	MaxPathLength int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from PATHTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultPlatform: envPlatform("PATHTOOLS_PLATFORM", pathops.Native),
		MaxOperands:     envInt("PATHTOOLS_MAX_OPERANDS", 64),
		MaxPathLength:   envInt("PATHTOOLS_MAX_PATH_LENGTH", 32*1024),
	}
}

func envPlatform(key string, fallback pathops.Platform) pathops.Platform {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	p, err := parsePlatform(v)
	if err != nil {
		slog.Warn("invalid platform env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return p
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
