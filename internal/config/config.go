// Package config handles the XDG configuration directory and the TODO_*
// environment settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/redis/go-redis/v9"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// FileStoreName is the JSON key-value file used by the file backend.
	FileStoreName = "storage.json"

	// SQLiteStoreName is the database file used by the sqlite backend.
	SQLiteStoreName = "storage.db"
)

// Backend names accepted in TODO_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Env holds settings read from the environment.
	Env Env
}

// Env is the environment-driven part of the configuration.
type Env struct {
	Backend       string `env:"TODO_BACKEND" env-default:"file"`
	ConfirmDelete bool   `env:"TODO_CONFIRM_DELETE" env-default:"true"`
	LogLevel      string `env:"TODO_LOG_LEVEL" env-default:"warn"`
	LogFormat     string `env:"TODO_LOG_FORMAT" env-default:"text"`
	Redis         RedisConfig
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	// Addr is "host:port". Optional if URL is set.
	Addr     string `env:"TODO_REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"TODO_REDIS_PASSWORD" env-default:""`
	DB       int    `env:"TODO_REDIS_DB" env-default:"0"`
	// URL overrides Addr/Password/DB if set. Example: redis://:secret@host:6379/2
	URL    string `env:"TODO_REDIS_URL" env-default:""`
	Prefix string `env:"TODO_REDIS_PREFIX" env-default:"todo:"`
}

// New creates a new Config with the default or specified config directory
// and reads TODO_* variables from the environment.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := env.normalize(); err != nil {
		return nil, err
	}

	return &Config{Dir: dir, Env: env}, nil
}

func (e *Env) normalize() error {
	e.Backend = strings.ToLower(strings.TrimSpace(e.Backend))
	switch e.Backend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown backend: %s", e.Backend)
	}

	if _, err := e.Redis.Options(); err != nil {
		return err
	}
	return nil
}

// Options builds the go-redis client options. TODO_REDIS_URL, when set,
// replaces Addr, Password and DB; a rediss:// URL enables TLS.
func (r RedisConfig) Options() (*redis.Options, error) {
	if u := strings.TrimSpace(r.URL); u != "" {
		opts, err := redis.ParseURL(u)
		if err != nil {
			return nil, fmt.Errorf("TODO_REDIS_URL: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FileStorePath returns the path to the file backend's JSON file.
func (c *Config) FileStorePath() string {
	return filepath.Join(c.Dir, FileStoreName)
}

// SQLiteStorePath returns the path to the sqlite backend's database.
func (c *Config) SQLiteStorePath() string {
	return filepath.Join(c.Dir, SQLiteStoreName)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
