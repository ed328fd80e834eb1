// Package config reads settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Starting root note, ex: "C4" or a MIDI number
	Root string
	// Starting scale name, looked up in scale.Catalog
	Scale string
	// Velocity for exported MIDI messages (0-127)
	Velocity int
	// Run the TUI in the terminal's alternate screen
	AltScreen bool
	// Path to write debug logs to. Empty disables logging.
	DebugLog string
}

// Load reads .env from the working directory if present, then the
// environment. Variables already set in the environment win over .env.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Root:      getEnv("RMX_ROOT", "C4"),
		Scale:     getEnv("RMX_SCALE", "major"),
		Velocity:  getEnvInt("RMX_VELOCITY", 100),
		AltScreen: getEnv("RMX_ALTSCREEN", "true") == "true",
		DebugLog:  getEnv("RMX_DEBUG", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}
