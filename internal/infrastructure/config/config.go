package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Accounts    AccountsConfig `mapstructure:"accounts"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// Address returns host:port for http.Server
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // milliseconds
	// IsolationLevel is used for every read-write transaction, e.g. "READ COMMITTED"
	IsolationLevel string `mapstructure:"isolationLevel"`
	AutoMigrate    bool   `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}

// CacheConfig contains the account list cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	RedisAddr string        `mapstructure:"redisAddr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	TTL       time.Duration `mapstructure:"ttl"` // seconds
	KeyPrefix string        `mapstructure:"keyPrefix"`
}

// AccountsConfig contains account business rules
type AccountsConfig struct {
	AllowNegativeBalance bool `mapstructure:"allowNegativeBalance"`
	SeedDefaultUsers     bool `mapstructure:"seedDefaultUsers"`
}

var validIsolationLevels = map[string]bool{
	"READ COMMITTED":  true,
	"REPEATABLE READ": true,
	"SERIALIZABLE":    true,
}

// Validate checks the settings the service cannot boot without
func (c *Config) Validate() error {
	var problems []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Database.Host == "" {
		problems = append(problems, errors.New("database.host is required"))
	}
	if c.Database.Username == "" {
		problems = append(problems, errors.New("database.username is required"))
	}
	if c.Database.Database == "" {
		problems = append(problems, errors.New("database.database is required"))
	}
	if !validIsolationLevels[strings.ToUpper(c.Database.IsolationLevel)] {
		problems = append(problems, fmt.Errorf("database.isolationLevel %q is not supported", c.Database.IsolationLevel))
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, errors.New("auth.jwtSecret is required"))
	}
	if c.Cache.Enabled && c.Cache.RedisAddr == "" {
		problems = append(problems, errors.New("cache.redisAddr is required when the cache is enabled"))
	}

	return errors.Join(problems...)
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
