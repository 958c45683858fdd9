// Package duckduckgo scrapes the JavaScript-free DuckDuckGo results page.
// It needs no credential and serves as the last real backend before synthetic results.
package duckduckgo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search"
)

// DefaultBaseURL HTML 版搜索页
const DefaultBaseURL = "https://html.duckduckgo.com/html/"

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client DuckDuckGo HTML 抓取客户端
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建客户端，baseURL 为空时使用官方 HTML 页面
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ search.Searcher = (*Client)(nil)

// Search implements search.Searcher
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", req.Query)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "text/html")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	// DuckDuckGo 触发风控时返回 202 + 验证页
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("duckduckgo error (status %d): %s", res.StatusCode, string(body))
	}

	results, err := Parse(res.Body, req.MaxResults)
	if err != nil {
		return nil, err
	}
	return &search.Response{Results: results}, nil
}

// Parse 解析结果页。缺少标题、摘要或链接的片段直接跳过，不影响其余结果
func Parse(r io.Reader, limit int) ([]search.Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var results []search.Result
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.HasClass("result--ad") {
			return true
		}
		anchor := s.Find("a.result__a").First()
		title := collapse(anchor.Text())
		snippet := collapse(s.Find(".result__snippet").First().Text())
		href, _ := anchor.Attr("href")
		link := resolveLink(href)
		if title == "" || snippet == "" || link == "" {
			return true
		}
		results = append(results, search.Result{Title: title, Snippet: snippet, URL: link})
		return limit <= 0 || len(results) < limit
	})
	return results, nil
}

// resolveLink 还原 //duckduckgo.com/l/?uddg=<target> 形式的跳转链接
func resolveLink(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
