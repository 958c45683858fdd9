package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/config"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/metrics"
)

// NewLimiter 按 RPM 限速，QPS 作为突发上限
func NewLimiter(cfg config.ConcurrencyConfig) *rate.Limiter {
	limit := rate.Limit(float64(cfg.RPM) / 60.0)
	return rate.NewLimiter(limit, cfg.QPS)
}

// Limited 在调用前等待令牌，并按阶段记录调用指标
type Limited struct {
	next    Generator
	limiter *rate.Limiter
	stage   string
}

// NewLimited 包装生成器。limiter 为 nil 时不限速
func NewLimited(next Generator, limiter *rate.Limiter, stage string) *Limited {
	return &Limited{next: next, limiter: limiter, stage: stage}
}

// Generate implements Generator
func (l *Limited) Generate(ctx context.Context, req Request) (string, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	start := time.Now()
	out, err := l.next.Generate(ctx, req)
	metrics.RecordLLM(l.stage, err, time.Since(start))
	return out, err
}
