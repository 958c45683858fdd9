package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, EngineAuto, cfg.Search.Engine)
	assert.Equal(t, 10, cfg.Search.ResultsLimit)
	assert.Equal(t, 3, cfg.Trend.KeywordLimit)
	assert.Equal(t, 3, cfg.Trend.HitsPerKeyword)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 120*time.Second, cfg.Server.Timeout)
}

func TestLoadConfig_MissingFileIsIgnored(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
server:
  port: 9000
search:
  engine: tavily
  tavily:
    api_key: from-yaml
llm:
  provider: anthropic
  model: claude-x
  timeout: 10s
`)
	t.Setenv("SEARCH_ENGINE", "brave")
	t.Setenv("SEARCH_BRAVE_API_KEY", "from-env")
	t.Setenv("LLM_MODEL", "claude-y")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, EngineBrave, cfg.Search.Engine)
	assert.Equal(t, "from-env", cfg.Search.Brave.APIKey)
	assert.Equal(t, "from-yaml", cfg.Search.Tavily.APIKey)
	assert.Equal(t, ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "claude-y", cfg.LLM.Model)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
}

func TestLoadConfig_DebugRaisesLogLevel(t *testing.T) {
	t.Setenv("SERVER_DEBUG", "true")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_RejectsUnknownEngine(t *testing.T) {
	t.Setenv("SEARCH_ENGINE", "bing")
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadConfig_RejectsUnknownProvider(t *testing.T) {
	path := writeYAML(t, "trend_llm:\n  provider: cohere\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestStageMerge(t *testing.T) {
	cfg := Default()
	cfg.LLM = LLMConfig{Provider: ProviderOpenAI, APIKey: "k", Model: "gpt", BaseURL: "http://x", Timeout: time.Second}

	t.Run("empty override inherits", func(t *testing.T) {
		assert.Equal(t, cfg.LLM, cfg.IntentStage())
	})

	t.Run("model override keeps credentials", func(t *testing.T) {
		cfg.IntentLLM = LLMConfig{Model: "gpt-mini"}
		got := cfg.IntentStage()
		assert.Equal(t, "gpt-mini", got.Model)
		assert.Equal(t, "k", got.APIKey)
	})

	t.Run("provider switch drops foreign credentials", func(t *testing.T) {
		cfg.TrendLLM = LLMConfig{Provider: ProviderAnthropic, APIKey: "ak"}
		got := cfg.TrendStage()
		assert.Equal(t, ProviderAnthropic, got.Provider)
		assert.Equal(t, "ak", got.APIKey)
		assert.Empty(t, got.BaseURL)
		assert.Empty(t, got.Model)
		assert.Equal(t, time.Second, got.Timeout)
	})
}
