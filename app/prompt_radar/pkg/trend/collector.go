package trend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/llm"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/logger"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/metrics"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search/orchestrator"
)

const (
	temperature = 0.5
	maxTokens   = 2048

	maxTrends  = 10
	maxSources = 10
	maxHits    = 10
)

var (
	errNoTrends  = errors.New("no trends in response")
	errNoSummary = errors.New("empty summary in response")
)

const promptTpl = `
다음은 "%s" 목적의 "%s" 분야에 대한 웹 검색 결과입니다.

검색 결과:
%s

이 검색 결과를 바탕으로 다음을 JSON 형식으로 정리해주세요:
{
    "trends": ["트렌드1", "트렌드2", ..., "트렌드10"],  // 핵심 트렌드 10가지 (간결하게)
    "summary": "전체 트렌드 요약 (2-3문장)"
}

트렌드는 구체적이고 실용적인 정보여야 합니다.
예시: "서울 겨울 데이트" 주제라면:
- "성수동 팝업스토어 트렌드"
- "한강 야경 카페 인기"
- "실내 액티비티 증가"
등과 같이 구체적으로 작성하세요.

JSON만 반환하고 다른 설명은 하지 마세요.
`

// Searcher 带降级链的搜索，orchestrator.Orchestrator 实现了该接口
type Searcher interface {
	Search(ctx context.Context, query string, count int) orchestrator.Result
}

// Collector 趋势收集器
type Collector struct {
	searcher       Searcher
	gen            llm.Generator
	enricher       Enricher
	keywordLimit   int
	hitsPerKeyword int
	resultsLimit   int
	now            func() time.Time
}

// Option 可选项
type Option func(*Collector)

// WithEnricher 启用正文补全
func WithEnricher(e Enricher) Option {
	return func(c *Collector) { c.enricher = e }
}

// WithLimits 设置关键词数量上限和每个关键词的结果数
func WithLimits(keywordLimit, hitsPerKeyword int) Option {
	return func(c *Collector) {
		if keywordLimit > 0 {
			c.keywordLimit = keywordLimit
		}
		if hitsPerKeyword > 0 {
			c.hitsPerKeyword = hitsPerKeyword
		}
	}
}

// WithResultsLimit 设置交给模型总结的搜索结果上限
func WithResultsLimit(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.resultsLimit = n
		}
	}
}

// WithClock 替换时钟，搜索词中的年份取自该时钟
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// NewCollector 创建收集器
func NewCollector(searcher Searcher, gen llm.Generator, opts ...Option) *Collector {
	c := &Collector{
		searcher:       searcher,
		gen:            gen,
		keywordLimit:   3,
		hitsPerKeyword: 3,
		resultsLimit:   maxHits,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect 按关键词搜索并总结趋势。任何失败都返回兜底结果
func (c *Collector) Collect(ctx context.Context, keywords []string, intent model.IntentAnalysisResult) model.Outcome[model.TrendResult] {
	hits := c.gather(ctx, keywords)
	sources := Sources(hits, maxSources)

	result, err := c.summarize(ctx, hits, intent)
	if err != nil {
		logger.Component("trend").Warnf("趋势总结失败，使用默认结果: %v", err)
		metrics.RecordFallback("trend")
		return model.Fallback(Default(keywords, intent.Domain, sources), err)
	}
	result.Sources = sources
	return model.Live(*result)
}

// gather 并发搜索各关键词，按关键词顺序拼接结果
func (c *Collector) gather(ctx context.Context, keywords []string) []search.Result {
	if len(keywords) > c.keywordLimit {
		keywords = keywords[:c.keywordLimit]
	}
	year := c.now().Year()

	perKeyword := make([][]search.Result, len(keywords))
	var g errgroup.Group
	for i, kw := range keywords {
		g.Go(func() error {
			query := fmt.Sprintf("%s 최신 트렌드 %d", kw, year)
			res := c.searcher.Search(ctx, query, c.hitsPerKeyword)
			hits := res.Hits
			if c.enricher != nil && !res.Degraded {
				enriched := make([]search.Result, len(hits))
				for j, h := range hits {
					enriched[j] = c.enricher.Enrich(ctx, h)
				}
				hits = enriched
			}
			perKeyword[i] = hits
			return nil
		})
	}
	_ = g.Wait()

	var all []search.Result
	for _, hits := range perKeyword {
		all = append(all, hits...)
	}
	return all
}

func (c *Collector) summarize(ctx context.Context, hits []search.Result, intent model.IntentAnalysisResult) (*model.TrendResult, error) {
	content, err := c.gen.Generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(promptTpl, intent.PrimaryIntent, intent.Domain, FormatHits(hits, c.resultsLimit)),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return Parse(content)
}

// FormatHits 把前 n 条结果渲染为提示词中的搜索结果段落
func FormatHits(hits []search.Result, n int) string {
	if len(hits) > n {
		hits = hits[:n]
	}
	blocks := make([]string, 0, len(hits))
	for _, h := range hits {
		blocks = append(blocks, fmt.Sprintf("제목: %s\n내용: %s", h.Title, h.Snippet))
	}
	return strings.Join(blocks, "\n\n")
}

// Parse 解析模型输出，去掉空白趋势并截断到 10 条
func Parse(content string) (*model.TrendResult, error) {
	var raw struct {
		Trends  []string `json:"trends"`
		Summary string   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSON(content)), &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	trends := make([]string, 0, len(raw.Trends))
	for _, t := range raw.Trends {
		if t = strings.TrimSpace(t); t != "" {
			trends = append(trends, t)
		}
		if len(trends) == maxTrends {
			break
		}
	}
	if len(trends) == 0 {
		return nil, errNoTrends
	}
	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		return nil, errNoSummary
	}
	return &model.TrendResult{Trends: trends, Summary: summary}, nil
}

// Sources 按首次出现顺序去重 URL，最多 n 条
func Sources(hits []search.Result, n int) []string {
	seen := make(map[string]struct{}, len(hits))
	out := make([]string, 0, n)
	for _, h := range hits {
		if len(out) == n {
			break
		}
		if h.URL == "" {
			continue
		}
		if _, ok := seen[h.URL]; ok {
			continue
		}
		seen[h.URL] = struct{}{}
		out = append(out, h.URL)
	}
	return out
}

// Default 兜底趋势：每个关键词一条，最多 10 条
func Default(keywords []string, domain string, sources []string) model.TrendResult {
	if len(keywords) > maxTrends {
		keywords = keywords[:maxTrends]
	}
	trends := make([]string, 0, len(keywords))
	for _, k := range keywords {
		trends = append(trends, fmt.Sprintf("%s 관련 최신 트렌드", k))
	}
	if sources == nil {
		sources = []string{}
	}
	return model.TrendResult{
		Trends:  trends,
		Summary: fmt.Sprintf("%s 분야의 최신 트렌드입니다.", domain),
		Sources: sources,
	}
}
