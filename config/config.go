package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Draw configuration
	MaxTickets   int     // Largest number of tickets one purchase may generate
	RandomSeed   *uint64 // When set, tickets come from a reproducible generator
	RetryOnError bool    // Re-prompt instead of exiting after rejected input

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated), empty disables publishing

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

const defaultMaxTickets = 100_000

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// Init loads the configuration and installs it as the global instance
func Init() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = cfg
	return cfg, nil
}

// Load reads the configuration without touching the global instance
func Load() (*Config, error) {
	return load()
}

// SetForTesting replaces the global instance
func SetForTesting(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// NewTestConfig returns a configuration suitable for tests
func NewTestConfig() *Config {
	return &Config{
		MaxTickets:  defaultMaxTickets,
		LogLevel:    "error",
		Environment: "test",
	}
}

// IsNATSEnabled reports whether events should be published to NATS
func (c *Config) IsNATSEnabled() bool {
	return c.NATSServers != ""
}

// load loads configuration from environment variables
func load() (*Config, error) {
	// A missing .env file is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	config := &Config{
		MaxTickets:   defaultMaxTickets,
		RetryOnError: os.Getenv("LOTTO_RETRY_ON_ERROR") == "true",
		NATSServers:  strings.TrimSpace(os.Getenv("NATS_SERVERS")),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "warn"),
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if limit := os.Getenv("LOTTO_MAX_TICKETS"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("LOTTO_MAX_TICKETS must be a positive integer, got %q", limit)
		}
		config.MaxTickets = parsed
	}

	if seed := os.Getenv("LOTTO_SEED"); seed != "" {
		parsed, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("LOTTO_SEED must be an unsigned integer, got %q", seed)
		}
		config.RandomSeed = &parsed
	}

	return config, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
