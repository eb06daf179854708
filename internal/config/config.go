// Package config reads CLI defaults from the environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Chunking defaults, overridable per invocation by flags.
	ChunkSize    int
	ChunkOverlap int
	MinChunk     int

	// Output is the default path for saved renders ("" means stdout).
	Output string
}

func Load() Config {
	cfg := Config{
		ChunkSize:    envInt("NOTEKIT_CHUNK_SIZE", 1500),
		ChunkOverlap: envInt("NOTEKIT_CHUNK_OVERLAP", 200),
		MinChunk:     envInt("NOTEKIT_MIN_CHUNK", 100),
		Output:       os.Getenv("NOTEKIT_OUTPUT"),
	}

	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 1500
	}
	if cfg.ChunkOverlap <= 0 {
		cfg.ChunkOverlap = 200
	}
	if cfg.MinChunk <= 0 {
		cfg.MinChunk = 100
	}
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
