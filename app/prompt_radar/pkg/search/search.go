package search

import (
	"context"
	"errors"
)

// ErrNoResults 后端请求成功但没有可用结果
var ErrNoResults = errors.New("search returned no results")

// Searcher 定义通用的搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query      string
	MaxResults int
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Truncate 截断到最多 n 条
func (r *Response) Truncate(n int) []Result {
	if r == nil || n <= 0 {
		return nil
	}
	if len(r.Results) > n {
		return r.Results[:n]
	}
	return r.Results
}
