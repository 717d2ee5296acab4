// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Config holds the application configuration.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Server   ServerConfig
	Store    StoreConfig
	Settings SettingsConfig
	Comment  CommentConfig
	Assist   AssistConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Name         string
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// StoreConfig holds template store configuration.
type StoreConfig struct {
	// Backend selects the storage engine: sqlite or badger.
	Backend string
	// Path is the database file (sqlite) or directory (badger).
	Path string
}

// SettingsConfig holds tenant settings provider configuration.
type SettingsConfig struct {
	// FilePath points at a JSON tenant-settings file. Empty means built-in
	// Ontario defaults.
	FilePath string
	// Watch enables an advisory fsnotify watcher that logs settings file
	// changes and parse problems.
	Watch bool
}

// CommentConfig holds comment-bank configuration.
type CommentConfig struct {
	// LevelEmojiJSON overrides the level→glyph mapping, as a JSON object.
	// Parsed once at startup; parse failure falls back to the default map.
	LevelEmojiJSON string
}

// AssistConfig holds AI comment-assist configuration.
type AssistConfig struct {
	// Enabled turns the generation provider on. When off (or on any provider
	// failure) assist endpoints return the caller's fallback verbatim.
	Enabled bool
	APIKey  string
	Model   string
	// Rate limiting for the assist endpoint, per client IP.
	RatePerMinute int
	RateBurst     int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	serverName := flag.String("server-name", "", "Name for the server")
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	storeBackend := flag.String("store-backend", "", "Template store backend: sqlite or badger (default: sqlite)")
	dbPath := flag.String("db-path", "", "Database file (sqlite) or directory (badger)")

	settingsFile := flag.String("settings-file", "", "Path to tenant settings JSON file")
	settingsWatch := flag.String("settings-watch", "", "Watch the settings file for changes (default: true)")

	levelEmoji := flag.String("level-emoji-json", "", "JSON override for the level emoji mapping")

	assistEnabled := flag.String("assist-enabled", "", "Enable AI comment assist (default: false)")
	assistModel := flag.String("assist-model", "", "Model for AI comment assist")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Name: getConfigValue(*serverName, "SERVER_NAME", "Classroom Hub"),
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Store: StoreConfig{
			Backend: getConfigValue(*storeBackend, "STORE_BACKEND", BackendSQLite),
			Path:    getConfigValue(*dbPath, "DB_PATH", ""),
		},
		Settings: SettingsConfig{
			FilePath: getConfigValue(*settingsFile, "SETTINGS_FILE", ""),
			Watch:    getBoolConfigValue(*settingsWatch, "SETTINGS_WATCH", true),
		},
		Comment: CommentConfig{
			LevelEmojiJSON: getConfigValue(*levelEmoji, "LEVEL_EMOJI_JSON", ""),
		},
		Assist: AssistConfig{
			Enabled:       getBoolConfigValue(*assistEnabled, "ASSIST_ENABLED", false),
			APIKey:        getConfigValue("", "GENAI_API_KEY", ""),
			Model:         getConfigValue(*assistModel, "ASSIST_MODEL", "gemini-2.0-flash"),
			RatePerMinute: getIntConfigValue("", "ASSIST_RATE_PER_MINUTE", 20),
			RateBurst:     getIntConfigValue("", "ASSIST_RATE_BURST", 5),
		},
	}

	// Parse server timeouts.
	var err error
	if cfg.Server.ReadTimeout, err = parseDuration(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = parseDuration(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Server.IdleTimeout, err = parseDuration(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, err
	}

	// Expand and default the store path.
	if err := cfg.expandStorePath(); err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Store.Backend != BackendSQLite && c.Store.Backend != BackendBadger {
		return fmt.Errorf("invalid store backend: %s (must be sqlite or badger)", c.Store.Backend)
	}

	if c.Store.Path == "" {
		return errors.New("store path cannot be empty after expansion")
	}

	if c.Assist.Enabled && c.Assist.APIKey == "" {
		return errors.New("GENAI_API_KEY is required when assist is enabled")
	}

	if c.Assist.RatePerMinute <= 0 || c.Assist.RateBurst <= 0 {
		return errors.New("assist rate limit values must be positive")
	}

	return nil
}

// expandStorePath expands ~ and makes the path absolute. Defaults to
// ~/ClassroomHub/comments.db (sqlite) or ~/ClassroomHub/db (badger).
func (c *Config) expandStorePath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, "ClassroomHub", "comments.db")
	if c.Store.Backend == BackendBadger {
		defaultPath = filepath.Join(homeDir, "ClassroomHub", "db")
	}

	expanded, err := expandPath(c.Store.Path, defaultPath)
	if err != nil {
		return err
	}
	c.Store.Path = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

func parseDuration(flagValue, envKey, defaultValue string) (time.Duration, error) {
	raw := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", strings.ToLower(envKey), raw, err)
	}
	return d, nil
}

// getConfigValue returns the first non-empty value: flag, env, default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return b
}

func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return n
}

// loadEnvFile reads KEY=VALUE pairs from a file into the process environment.
// Existing environment variables are not overwritten.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)

		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}

	return scanner.Err()
}
