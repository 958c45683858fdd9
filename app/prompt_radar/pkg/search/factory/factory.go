package factory

import (
	"fmt"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/brave"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/config"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/duckduckgo"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search/orchestrator"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/searxng"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/tavily"
)

// ResolveEngine 解析实际使用的主引擎
func ResolveEngine(cfg *config.Config) string {
	engine := cfg.Search.Engine
	if engine == "" || engine == config.EngineAuto {
		// 自动选择：有 brave key 用 brave，其次 tavily，都没有就用 duckduckgo
		switch {
		case cfg.Search.Brave.APIKey != "":
			return config.EngineBrave
		case cfg.Search.Tavily.APIKey != "":
			return config.EngineTavily
		default:
			return config.EngineDuckDuckGo
		}
	}
	return engine
}

// NewSearcher 根据引擎名创建搜索实例
func NewSearcher(cfg *config.Config, engine string) (search.Searcher, error) {
	sc := cfg.Search
	switch engine {
	case config.EngineBrave:
		if sc.Brave.APIKey == "" {
			return nil, fmt.Errorf("brave api key is missing")
		}
		return brave.NewClient(sc.Brave.APIKey, sc.Brave.BaseURL, sc.Timeout), nil

	case config.EngineTavily:
		if sc.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(sc.Tavily.APIKey, sc.Tavily.BaseURL, sc.Timeout), nil

	case config.EngineSearXNG:
		if sc.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(sc.SearXNG.BaseURL, sc.Timeout), nil

	case config.EngineDuckDuckGo:
		return duckduckgo.NewClient(sc.DuckDuckGo.BaseURL, sc.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search engine: %s", engine)
	}
}

// NewOrchestrator 创建带降级链的搜索编排器
func NewOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	engine := ResolveEngine(cfg)
	primary, err := NewSearcher(cfg, engine)
	if err != nil {
		return nil, err
	}

	var fallback *orchestrator.Backend
	if engine != config.EngineDuckDuckGo {
		fallback = &orchestrator.Backend{
			Name:     config.EngineDuckDuckGo,
			Searcher: duckduckgo.NewClient(cfg.Search.DuckDuckGo.BaseURL, cfg.Search.Timeout),
		}
	}

	return orchestrator.New(orchestrator.Backend{Name: engine, Searcher: primary}, fallback), nil
}
