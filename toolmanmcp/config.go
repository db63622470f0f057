package toolmanmcp

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds configurable MCP server defaults, loaded once at
// startup from TOOLMAN_* environment variables.
type serverConfig struct {
	MaxImportDepth int
	MaxInlineSize  int64
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		MaxImportDepth: envInt("TOOLMAN_MAX_IMPORT_DEPTH", 64),
		MaxInlineSize:  envInt64("TOOLMAN_MAX_INLINE_SIZE", 1<<20),
	}
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

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
