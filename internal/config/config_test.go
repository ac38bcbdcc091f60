package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-leaveai/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults and file", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  jwt_secret: file-secret\ndb:\n  name: leave_test\n")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
		assert.Equal(t, "leave_test", cfg.Database.Name)
		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
		assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
		assert.Equal(t, 75.0, cfg.AI.ApproveThreshold)
		assert.Equal(t, 25.0, cfg.AI.RejectThreshold)
		assert.Equal(t, "MANUAL_REVIEW", cfg.AI.FallbackMode)
		assert.Equal(t, "hr.leave.submitted.v1", cfg.Kafka.SubmittedTopic)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  jwt_secret: file-secret\n")
		t.Setenv("LEAVEAI_AUTH_JWT_SECRET", "env-secret")
		t.Setenv("LEAVEAI_AI_FALLBACK_MODE", "rules_only")
		t.Setenv("LEAVEAI_AI_APPROVE_THRESHOLD", "80")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
		assert.Equal(t, "RULES_ONLY", cfg.AI.FallbackMode)
		assert.Equal(t, 80.0, cfg.AI.ApproveThreshold)
	})

	t.Run("invalid thresholds", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  jwt_secret: s\nai:\n  approve_threshold: 20\n  reject_threshold: 40\n")

		_, err := config.Load(path)

		assert.ErrorContains(t, err, "approve_threshold must be greater")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Auth: config.AuthConfig{JWTSecret: "s"},
			AI: config.AIConfig{
				ApproveThreshold: 75,
				RejectThreshold:  25,
				FallbackMode:     "MANUAL_REVIEW",
				Timeout:          time.Second,
			},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cases := map[string]func(c *config.Config){
		"missing secret":        func(c *config.Config) { c.Auth.JWTSecret = "" },
		"approve above 100":     func(c *config.Config) { c.AI.ApproveThreshold = 101 },
		"negative reject":       func(c *config.Config) { c.AI.RejectThreshold = -1 },
		"equal thresholds":      func(c *config.Config) { c.AI.RejectThreshold = 75 },
		"unknown fallback mode": func(c *config.Config) { c.AI.FallbackMode = "APPROVE_ALL" },
		"zero timeout":          func(c *config.Config) { c.AI.Timeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	l, err := config.NewLogger(config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = config.NewLogger(config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}
