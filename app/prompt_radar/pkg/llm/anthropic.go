package llm

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAnthropicModel 未指定模型时使用
const DefaultAnthropicModel = "claude-3-5-sonnet-20241022"

const defaultAnthropicMaxTokens = 4096

// AnthropicGenerator Anthropic Messages API 生成器
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicGenerator 创建 Anthropic 生成器
func NewAnthropicGenerator(baseURL, apiKey, modelName string, timeout time.Duration) *AnthropicGenerator {
	opts := []option.RequestOption{option.WithAPIKey(strings.TrimSpace(apiKey))}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSpace(baseURL)))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	if modelName == "" {
		modelName = DefaultAnthropicModel
	}
	return &AnthropicGenerator{
		client: anthropic.NewClient(opts...),
		model:  modelName,
	}
}

// Generate implements Generator
func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: defaultAnthropicMaxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt))},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = int64(req.MaxTokens)
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(req.Temperature))
	}
	if strings.TrimSpace(req.System) != "" {
		params.System = []anthropic.TextBlockParam{{Text: strings.TrimSpace(req.System)}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
