package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("TOKENINFO_URL", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowOrigins)
	assert.Equal(t, "https://oauth2.googleapis.com/tokeninfo", cfg.TokenInfoURL)
	assert.Equal(t, "firebase-service-account.json", cfg.CredentialFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://todo.example.com, https://staging.example.com")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"https://todo.example.com", "https://staging.example.com"}, cfg.AllowOrigins)
}

func TestSplitOrigins_DropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitOrigins("a,, b ,"))
}
