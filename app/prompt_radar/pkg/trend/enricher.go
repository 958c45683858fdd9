package trend

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/logger"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search"
)

// Enricher 为摘要过短的搜索结果补充正文
type Enricher interface {
	Enrich(ctx context.Context, hit search.Result) search.Result
}

// FetchFunc 抓取页面正文
type FetchFunc func(ctx context.Context, url string) (string, error)

// ReadabilityEnricher 用 go-readability 抓取正文替换过短的摘要
type ReadabilityEnricher struct {
	minLength int
	maxLength int
	fetch     FetchFunc
}

// NewReadabilityEnricher 摘要短于 minLength 个字符时抓取正文，截断到 maxLength 个字符
func NewReadabilityEnricher(minLength, maxLength int, timeout time.Duration) *ReadabilityEnricher {
	return &ReadabilityEnricher{
		minLength: minLength,
		maxLength: maxLength,
		fetch: func(_ context.Context, url string) (string, error) {
			article, err := readability.FromURL(url, timeout)
			if err != nil {
				return "", err
			}
			return article.TextContent, nil
		},
	}
}

// Enrich implements Enricher
func (e *ReadabilityEnricher) Enrich(ctx context.Context, hit search.Result) search.Result {
	if utf8.RuneCountInString(hit.Snippet) >= e.minLength || hit.URL == "" {
		return hit
	}
	text, err := e.fetch(ctx, hit.URL)
	if err != nil {
		logger.Component("trend").Debugf("抓取正文失败 [%s]: %v", hit.URL, err)
		return hit
	}
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= utf8.RuneCountInString(hit.Snippet) {
		return hit
	}
	if e.maxLength > 0 && utf8.RuneCountInString(text) > e.maxLength {
		text = string([]rune(text)[:e.maxLength])
	}
	hit.Snippet = text
	return hit
}
