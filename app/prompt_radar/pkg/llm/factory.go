package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/config"
)

// New 根据配置创建生成器。缺少 API Key 时返回一个总是报 ErrUnavailable 的生成器
func New(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return unavailable{provider: cfg.Provider}, nil
	}

	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAIGenerator(ctx, cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout)
	case config.ProviderAnthropic:
		return NewAnthropicGenerator(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout), nil
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}

// NewStage 创建某个阶段使用的限速生成器
func NewStage(ctx context.Context, cfg config.LLMConfig, limiter *rate.Limiter, stage string) (Generator, error) {
	g, err := New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s llm: %w", stage, err)
	}
	return NewLimited(g, limiter, stage), nil
}
