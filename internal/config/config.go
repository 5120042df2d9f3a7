// Package config provides configuration management for gradebook.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const (
	// DefaultDBPath is the SQLite database file used when no driver is configured.
	DefaultDBPath = "school.db"

	// DefaultMaxConns is the default connection pool size.
	DefaultMaxConns = 4
)

// Config holds the application configuration.
type Config struct {
	// Database settings
	Driver   string `yaml:"driver"`    // sqlite, postgres, or mysql
	DBPath   string `yaml:"db_path"`   // SQLite database file (sqlite only)
	DSN      string `yaml:"dsn"`       // full DSN; overrides host/port/name fields
	Host     string `yaml:"db_host"`   // server drivers only
	Port     int    `yaml:"db_port"`   //
	Name     string `yaml:"db_name"`   //
	User     string `yaml:"db_user"`   //
	Password string `yaml:"-"`         // env only, never read from the settings file
	MaxConns int    `yaml:"max_conns"` // connection pool size

	// EchoSQL enables GORM statement logging, like the original echo=True engines.
	EchoSQL bool `yaml:"echo_sql"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Driver:   DriverSQLite,
		DBPath:   DefaultDBPath,
		MaxConns: DefaultMaxConns,
	}
}

// Load loads configuration from the given YAML settings file, merging with
// defaults and applying environment overrides. A missing settings file is not
// an error; credentials always come from the environment (a .env file is
// honored when present).
func Load(path string) (*Config, error) {
	// Source .env before reading overrides, matching the original scripts'
	// load_dotenv() behavior. Absence is fine.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("read settings file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse settings file: %w", err)
			}
		}
	}

	cfg.applyEnv()

	if cfg.MaxConns <= 0 {
		cfg.MaxConns = DefaultMaxConns
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.Driver == DriverSQLite && cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}

	return cfg, nil
}

// applyEnv overrides config fields from environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("GRADEBOOK_DB_DRIVER"); v != "" {
		c.Driver = v
	}
	if v := os.Getenv("GRADEBOOK_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("GRADEBOOK_DSN"); v != "" {
		c.DSN = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Port = p
		}
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Name = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Password = v
	}
	if v := os.Getenv("GRADEBOOK_MAX_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxConns = n
		}
	}
	if v := os.Getenv("GRADEBOOK_ECHO_SQL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.EchoSQL = b
		}
	}
}

// DatabaseDSN returns the connection string for the configured driver.
// An explicit DSN wins; otherwise one is assembled from the parts.
func (c *Config) DatabaseDSN() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}

	switch c.Driver {
	case DriverSQLite, "":
		return c.DBPath, nil

	case DriverPostgres:
		host := c.Host
		if host == "" {
			host = "127.0.0.1"
		}
		port := c.Port
		if port == 0 {
			port = 5432
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			host, port, c.User, c.Password, c.Name), nil

	case DriverMySQL:
		host := c.Host
		if host == "" {
			host = "127.0.0.1"
		}
		port := c.Port
		if port == 0 {
			port = 3306
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, host, port, c.Name), nil

	default:
		return "", fmt.Errorf("unsupported driver %q", c.Driver)
	}
}

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	configOnce.Do(func() {
		var err error
		globalConfig, err = Load(os.Getenv("GRADEBOOK_SETTINGS"))
		if err != nil {
			globalConfig = Default()
		}
	})
	return globalConfig
}
