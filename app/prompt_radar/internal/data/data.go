package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/internal/biz"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/config"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/intent"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/llm"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search/factory"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search/orchestrator"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/trend"
)

// ProviderSet 外部依赖（LLM、搜索）的 Provider 集合
var ProviderSet = wire.NewSet(
	NewLimiter,
	NewSearchOrchestrator,
	NewIntentAnalyzer,
	NewTrendCollector,
)

// NewLimiter 所有阶段共享的 LLM 限流器
func NewLimiter(cfg *config.Config) *rate.Limiter {
	return llm.NewLimiter(cfg.Concurrency)
}

// NewSearchOrchestrator 按配置选择主搜索引擎
func NewSearchOrchestrator(cfg *config.Config, logger log.Logger) (*orchestrator.Orchestrator, error) {
	o, err := factory.NewOrchestrator(cfg)
	if err != nil {
		return nil, err
	}
	log.NewHelper(logger).Infof("search engine: %s", o.Primary())
	return o, nil
}

// NewIntentAnalyzer 创建意图分析器
func NewIntentAnalyzer(cfg *config.Config, limiter *rate.Limiter) (biz.IntentAnalyzer, error) {
	gen, err := llm.NewStage(context.Background(), cfg.IntentStage(), limiter, "intent")
	if err != nil {
		return nil, err
	}
	return intent.NewAnalyzer(gen), nil
}

// NewTrendCollector 创建趋势收集器
func NewTrendCollector(cfg *config.Config, limiter *rate.Limiter, o *orchestrator.Orchestrator) (biz.TrendCollector, error) {
	gen, err := llm.NewStage(context.Background(), cfg.TrendStage(), limiter, "trend")
	if err != nil {
		return nil, err
	}

	opts := []trend.Option{
		trend.WithLimits(cfg.Trend.KeywordLimit, cfg.Trend.HitsPerKeyword),
		trend.WithResultsLimit(cfg.Search.ResultsLimit),
	}
	if cfg.Trend.EnrichSnippets {
		opts = append(opts, trend.WithEnricher(
			trend.NewReadabilityEnricher(cfg.Trend.MinSnippetLength, 500, cfg.Search.Timeout),
		))
	}
	return trend.NewCollector(o, gen, opts...), nil
}
