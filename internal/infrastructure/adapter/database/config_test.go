package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

func validConfig() *Config {
	return &Config{
		Host:           "localhost",
		Port:           5432,
		Username:       "ledger",
		Password:       "secret",
		Database:       "ledger",
		SSLMode:        "disable",
		MaxOpenConns:   10,
		MaxIdleConns:   5,
		QueryTimeout:   time.Second,
		RetryAttempts:  3,
		IsolationLevel: "READ COMMITTED",
	}
}

func TestNewConfig(t *testing.T) {
	appConf := &config.Config{
		Database: config.DatabaseConfig{
			Host:           "db",
			Port:           "6543",
			Username:       "ledger",
			Database:       "ledger",
			SSLMode:        "require",
			RetryAttempts:  2,
			RetryDelay:     75 * time.Millisecond,
			IsolationLevel: "serializable",
		},
		Logger: config.LoggerConfig{Level: "debug"},
	}

	dbConf := NewConfig(appConf)

	assert.Equal(t, "db", dbConf.Host)
	assert.Equal(t, 6543, dbConf.Port)
	assert.Equal(t, "SERIALIZABLE", dbConf.IsolationLevel)
	assert.Equal(t, "debug", dbConf.LogLevel)
	assert.Equal(t, 75*time.Millisecond, dbConf.RetryDelay)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"Missing host", func(c *Config) { c.Host = "" }},
		{"Bad port", func(c *Config) { c.Port = 0 }},
		{"Missing user", func(c *Config) { c.Username = "" }},
		{"Missing database", func(c *Config) { c.Database = "" }},
		{"Bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"No open conns", func(c *Config) { c.MaxOpenConns = 0 }},
		{"No query timeout", func(c *Config) { c.QueryTimeout = 0 }},
		{"Negative retries", func(c *Config) { c.RetryAttempts = -1 }},
		{"Unknown isolation", func(c *Config) { c.IsolationLevel = "READ UNCOMMITTED" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfigDSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=ledger password=secret dbname=ledger sslmode=disable",
		validConfig().DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 5432, ParsePort(" 5432 "))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
}
