package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/brave"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/config"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/duckduckgo"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/searxng"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/tavily"
)

func TestResolveEngine_Auto(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.EngineDuckDuckGo, ResolveEngine(cfg))

	cfg.Search.Tavily.APIKey = "tv"
	assert.Equal(t, config.EngineTavily, ResolveEngine(cfg))

	cfg.Search.Brave.APIKey = "bv"
	assert.Equal(t, config.EngineBrave, ResolveEngine(cfg))

	cfg.Search.Engine = config.EngineSearXNG
	assert.Equal(t, config.EngineSearXNG, ResolveEngine(cfg))
}

func TestNewSearcher(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Brave.APIKey = "bv"
	cfg.Search.Tavily.APIKey = "tv"
	cfg.Search.SearXNG.BaseURL = "http://searx.local"

	s, err := NewSearcher(cfg, config.EngineBrave)
	require.NoError(t, err)
	assert.IsType(t, &brave.Client{}, s)

	s, err = NewSearcher(cfg, config.EngineTavily)
	require.NoError(t, err)
	assert.IsType(t, &tavily.Client{}, s)

	s, err = NewSearcher(cfg, config.EngineSearXNG)
	require.NoError(t, err)
	assert.IsType(t, &searxng.Client{}, s)

	s, err = NewSearcher(cfg, config.EngineDuckDuckGo)
	require.NoError(t, err)
	assert.IsType(t, &duckduckgo.Client{}, s)

	_, err = NewSearcher(cfg, "bing")
	assert.Error(t, err)
}

func TestNewOrchestrator_MissingCredential(t *testing.T) {
	for _, engine := range []string{config.EngineBrave, config.EngineTavily, config.EngineSearXNG} {
		cfg := config.Default()
		cfg.Search.Engine = engine
		_, err := NewOrchestrator(cfg)
		assert.Error(t, err, engine)
	}
}

func TestNewOrchestrator_Auto(t *testing.T) {
	cfg := config.Default()
	o, err := NewOrchestrator(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.EngineDuckDuckGo, o.Primary())

	cfg.Search.Brave.APIKey = "bv"
	o, err = NewOrchestrator(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.EngineBrave, o.Primary())
}
