package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/logger"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/metrics"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search"
)

// EngineSynthetic 合成结果的引擎名
const EngineSynthetic = "synthetic"

// Backend 带名字的搜索后端
type Backend struct {
	Name     string
	Searcher search.Searcher
}

// Result 一次编排搜索的结果
type Result struct {
	Hits   []search.Result
	Engine string
	// Degraded 为 true 表示所有真实后端都失败，Hits 为合成数据
	Degraded bool
}

// Orchestrator 主引擎 -> DuckDuckGo -> 合成结果 的降级链
type Orchestrator struct {
	primary  Backend
	fallback *Backend
	now      func() time.Time
}

// Option 可选项
type Option func(*Orchestrator)

// WithClock 替换时钟，合成结果中的年份取自该时钟
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New 创建编排器。fallback 为 nil 时主引擎失败直接走合成结果
func New(primary Backend, fallback *Backend, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		primary:  primary,
		fallback: fallback,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Primary 主引擎名
func (o *Orchestrator) Primary() string {
	return o.primary.Name
}

// Search 按降级链搜索，count > 0 时结果恒为非空且不超过 count 条
func (o *Orchestrator) Search(ctx context.Context, query string, count int) Result {
	if count <= 0 {
		return Result{Hits: []search.Result{}, Engine: o.primary.Name}
	}

	chain := []Backend{o.primary}
	if o.fallback != nil && o.fallback.Name != o.primary.Name {
		chain = append(chain, *o.fallback)
	}

	var causes []error
	for _, b := range chain {
		hits, err := o.attempt(ctx, b, query, count)
		if err == nil {
			return Result{Hits: hits, Engine: b.Name}
		}
		causes = append(causes, err)
	}

	logger.Component("search").WithFields(logrus.Fields{
		"query": query,
		"count": count,
	}).Warnf("all search engines failed, using synthetic results: %v", errors.Join(causes...))
	metrics.RecordFallback("search")

	return Result{
		Hits:     Synthetic(query, count, o.now().Year()),
		Engine:   EngineSynthetic,
		Degraded: true,
	}
}

func (o *Orchestrator) attempt(ctx context.Context, b Backend, query string, count int) ([]search.Result, error) {
	start := time.Now()
	log := logger.Component("search").WithFields(logrus.Fields{
		"engine": b.Name,
		"query":  query,
	})

	resp, err := b.Searcher.Search(ctx, &search.Request{Query: query, MaxResults: count})
	if err != nil {
		metrics.RecordSearch(b.Name, metrics.OutcomeError, time.Since(start))
		log.Warnf("search failed: %v", err)
		return nil, fmt.Errorf("%s: %w", b.Name, err)
	}

	hits := resp.Truncate(count)
	if len(hits) == 0 {
		metrics.RecordSearch(b.Name, metrics.OutcomeEmpty, time.Since(start))
		log.Warn("search returned no results")
		return nil, fmt.Errorf("%s: %w", b.Name, search.ErrNoResults)
	}

	metrics.RecordSearch(b.Name, metrics.OutcomeOK, time.Since(start))
	log.Debugf("search returned %d results", len(hits))
	return hits, nil
}

// Synthetic 生成 count 条引用查询文本的占位结果
func Synthetic(query string, count, year int) []search.Result {
	if count <= 0 {
		return []search.Result{}
	}
	hits := make([]search.Result, 0, count)
	for i := 0; i < count; i++ {
		hits = append(hits, search.Result{
			Title:   fmt.Sprintf("%s에 대한 최신 트렌드 %d", query, i+1),
			Snippet: fmt.Sprintf("%s 관련 최신 정보입니다. %d년 트렌드를 반영한 내용입니다.", query, year),
			URL:     fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return hits
}
