package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                  "8080",
		JWTSecret:             "secure-secret-at-least-32-chars-long",
		DBPassword:            "secure-password",
		DBSSLMode:             "require",
		CommentsPageSize:      5,
		RepliesPageSize:       5,
		NotificationsPageSize: 10,
		MaxCommentLength:      10000,
		TracingSampleRatio:    1,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"valid development", func(c *Config) { c.Env = "development" }, false},
		{"valid production", func(c *Config) { c.Env = "production" }, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"zero replies page", func(c *Config) { c.RepliesPageSize = 0 }, true},
		{"zero comment length", func(c *Config) { c.MaxCommentLength = 0 }, true},
		{"sample ratio out of range", func(c *Config) { c.TracingSampleRatio = 1.5 }, true},
		{"production default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = defaultJWTSecret
		}, true},
		{"production short secret", func(c *Config) {
			c.Env = "prod"
			c.JWTSecret = "short"
		}, true},
		{"production weak db password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"production ssl disabled", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "disable"
		}, true},
		{"test ssl disabled", func(c *Config) {
			c.Env = "test"
			c.DBSSLMode = "disable"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	defer viper.Reset()

	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_SSLMODE", "  DISABLE  ")
	t.Setenv("REPLIES_PAGE_SIZE", "7")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, 7, c.RepliesPageSize)
	assert.Equal(t, 5, c.CommentsPageSize)
	assert.Equal(t, 10, c.NotificationsPageSize)
	assert.Equal(t, 10000, c.MaxCommentLength)
	assert.Equal(t, "bloghub-identity", c.JWTIssuer)
	assert.False(t, c.IsProduction())
}

func TestLoadConfig_TestProfile(t *testing.T) {
	defer viper.Reset()

	t.Setenv("APP_ENV", "test")
	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "test", c.Env)
}

func TestLoadConfig_MissingProfile(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("APP_ENV")

	os.Setenv("APP_ENV", "staging-nonexistent")
	_, err := LoadConfig()
	assert.Error(t, err)
}
