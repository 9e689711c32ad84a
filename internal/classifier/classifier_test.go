package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/EmotionAnalyzer/internal/config"
)

func loadConfig(t *testing.T, body string) *config.Config {
	t.Helper()
	home := t.TempDir()
	t.Setenv("EMOTIONANALYZER_HOME", home)
	t.Setenv("EMOTION_API_URL", "")
	dir := filepath.Join(home, ".emotionanalyzer")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0600))

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return cfg
}

func TestNew(t *testing.T) {
	t.Run("http backend by default", func(t *testing.T) {
		cfg := loadConfig(t, `{"profiles": {"p": {"base_url": "http://svc:5000/"}}, "active_profile": "p"}`)
		c, err := New(cfg)
		require.NoError(t, err)
		hc, ok := c.(*HTTPClassifier)
		require.True(t, ok)
		assert.Equal(t, "http://svc:5000", hc.BaseURL())
	})

	t.Run("openai backend", func(t *testing.T) {
		cfg := loadConfig(t, `{"profiles": {"p": {"backend": "openai", "api_key": "k"}}, "active_profile": "p"}`)
		c, err := New(cfg)
		require.NoError(t, err)
		_, ok := c.(*LLMClassifier)
		assert.True(t, ok)
	})

	t.Run("openai backend without key", func(t *testing.T) {
		cfg := loadConfig(t, `{"profiles": {"p": {"backend": "openai"}}, "active_profile": "p"}`)
		_, err := New(cfg)
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := loadConfig(t, `{"profiles": {"p": {"backend": "grpc"}}, "active_profile": "p"}`)
		_, err := New(cfg)
		assert.Error(t, err)
	})
}
