package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "")
	t.Setenv("FIREFLIES_WEBHOOK_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "https://api.fireflies.ai/graphql", cfg.Fireflies.APIURL)
	assert.Equal(t, time.Hour, cfg.ProjectBrief.CacheTTL)
	assert.Equal(t, 72*time.Hour, cfg.OpenAI.CacheTTL)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.True(t, cfg.OpenAI.ValidationEnabled)
	assert.Equal(t, time.Minute, cfg.Cache.LazyPullCooldown)
	assert.False(t, cfg.VerifySignature())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("FIREFLIES_WEBHOOK_SECRET", "s3cret")
	t.Setenv("PROJECT_BRIEF_CACHE_TTL", "15m")
	t.Setenv("OPENAI_VALIDATION_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.ProjectBrief.CacheTTL)
	assert.False(t, cfg.OpenAI.ValidationEnabled)
	assert.True(t, cfg.VerifySignature())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestVerifySignature_ExplicitOverride(t *testing.T) {
	off := false
	cfg := &Config{Fireflies: FirefliesConfig{WebhookSecret: "s3cret", VerifySignature: &off}}
	assert.False(t, cfg.VerifySignature())

	on := true
	cfg = &Config{Fireflies: FirefliesConfig{VerifySignature: &on}}
	assert.True(t, cfg.VerifySignature())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database:     DatabaseConfig{Driver: "postgres", URI: "postgres://x"},
			Fireflies:    FirefliesConfig{Timeout: time.Second},
			ProjectBrief: ProjectBriefConfig{Timeout: time.Second},
		}
	}
	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.URI = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Fireflies.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.OpenAI.CacheTTL = -time.Second
	assert.Error(t, cfg.Validate())
}
