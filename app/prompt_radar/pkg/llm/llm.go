package llm

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrUnavailable 未配置凭证，调用方应直接走兜底
	ErrUnavailable = errors.New("llm provider is not configured")
	// ErrEmptyResponse 模型返回了空内容
	ErrEmptyResponse = errors.New("llm returned empty content")
)

// Request 一次单轮补全请求
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Generator 文本补全接口，返回模型原始输出
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc 把普通函数适配为 Generator
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// CleanJSON 去掉模型输出外层的 markdown 代码块标记
func CleanJSON(content string) string {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

type unavailable struct {
	provider string
}

func (u unavailable) Generate(context.Context, Request) (string, error) {
	return "", errors.Join(ErrUnavailable, errors.New("missing api key for "+u.provider))
}
