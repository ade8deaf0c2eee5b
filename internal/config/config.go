// Package config reads runtime settings from the environment, with optional
// .env support, and applies defaults so the app can boot with nothing set.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type StorageBackend string

const (
	BackendSQLite StorageBackend = "sqlite"
	BackendBolt   StorageBackend = "bolt"
	BackendMemory StorageBackend = "memory"
)

type Config struct {
	Storage StorageConfig
	Logger  LoggerConfig
	AI      AIConfig
	Auth    AuthConfig
	Locale  string
}

type StorageConfig struct {
	Backend StorageBackend
	Path    string
}

type LoggerConfig struct {
	Level string
	Path  string
}

type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// MockDelay simulates remote latency when no key is configured.
	MockDelay time.Duration
}

type AuthConfig struct {
	// Latency is the simulated round-trip for login/signup/reset.
	Latency time.Duration
	// WipeTasksOnLogout reproduces the legacy logout that cleared the whole
	// shared task collection instead of just the session.
	WipeTasksOnLogout bool
}

func Default() Config {
	dataDir := defaultDataDir()
	return Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    filepath.Join(dataDir, "taskpad.db"),
		},
		Logger: LoggerConfig{
			Level: "info",
			Path:  filepath.Join(dataDir, "taskpad.log"),
		},
		AI: AIConfig{
			BaseURL:   "https://api.openai.com/v1",
			Model:     "gpt-4o-mini",
			Timeout:   30 * time.Second,
			MockDelay: 1500 * time.Millisecond,
		},
		Auth: AuthConfig{
			Latency: time.Second,
		},
		Locale: "en",
	}
}

// Load reads TASKPAD_* environment variables (optionally from .env) over
// the defaults.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Default()
	if v := getString("TASKPAD_DB_BACKEND"); v != "" {
		cfg.Storage.Backend = StorageBackend(strings.ToLower(v))
	}
	if v := getString("TASKPAD_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := getString("TASKPAD_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := getString("TASKPAD_LOG_PATH"); v != "" {
		cfg.Logger.Path = v
	}
	cfg.AI.APIKey = getString("TASKPAD_AI_API_KEY")
	if v := getString("TASKPAD_AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := getString("TASKPAD_AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v, ok := getInt("TASKPAD_AI_TIMEOUT_MS"); ok && v > 0 {
		cfg.AI.Timeout = time.Duration(v) * time.Millisecond
	}
	if v, ok := getInt("TASKPAD_SIMULATED_LATENCY_MS"); ok && v >= 0 {
		cfg.Auth.Latency = time.Duration(v) * time.Millisecond
		cfg.AI.MockDelay = time.Duration(v) * time.Millisecond
	}
	if v, ok := getBool("TASKPAD_WIPE_TASKS_ON_LOGOUT"); ok {
		cfg.Auth.WipeTasksOnLogout = v
	}
	if v := getString("TASKPAD_LANG"); v != "" {
		cfg.Locale = v
	}
	return cfg
}

func (c Config) Validate() bool {
	switch c.Storage.Backend {
	case BackendSQLite, BackendBolt, BackendMemory:
		return true
	default:
		return false
	}
}

func defaultDataDir() string {
	if base, err := os.UserHomeDir(); err == nil {
		return filepath.Join(base, ".taskpad")
	}
	return ".taskpad"
}

func getString(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func getInt(name string) (int, bool) {
	raw := getString(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getBool(name string) (bool, bool) {
	raw := strings.ToLower(getString(name))
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
