package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		jwtSecret   string
		dbPassword  string
		expectError bool
	}{
		{"Production with disable SSL mode", "production", "disable", "secure-secret-at-least-32-chars-long", "secure-password", true},
		{"Production with require SSL mode", "production", "require", "secure-secret-at-least-32-chars-long", "secure-password", false},
		{"Production with default JWT secret", "production", "require", "your-secret-key-change-in-production", "secure-password", true},
		{"Production with short JWT secret", "prod", "require", "short", "secure-password", true},
		{"Production with default DB password", "prod", "require", "secure-secret-at-least-32-chars-long", "password", true},
		{"Development with disable SSL mode", "development", "disable", "dev-secret", "password", false},
		{"Test with empty SSL mode", "test", "", "test-secret", "password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:        tt.env,
				DBSSLMode:  tt.sslMode,
				JWTSecret:  tt.jwtSecret,
				DBPassword: tt.dbPassword,
				Port:       "8460",
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateRequiredFields(t *testing.T) {
	c := &Config{JWTSecret: "secret"}
	assert.Error(t, c.Validate(), "missing port should fail")

	c = &Config{Port: "8460"}
	assert.Error(t, c.Validate(), "missing JWT secret should fail")
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8460", c.Port)
	assert.Equal(t, "ripple", c.DBName)
	assert.Equal(t, "ripple:events", c.EventsChannel)
}

func TestLoadConfig_SSLModeNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
}
