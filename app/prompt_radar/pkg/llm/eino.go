package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// DefaultOpenAIModel 未指定模型时使用
const DefaultOpenAIModel = "gpt-4o-mini"

// EinoGenerator 基于 eino ChatModel 的生成器，适用于所有 OpenAI 兼容接口
type EinoGenerator struct {
	chatModel model.BaseChatModel
}

// NewEinoGenerator 包装任意 eino ChatModel
func NewEinoGenerator(cm model.BaseChatModel) *EinoGenerator {
	return &EinoGenerator{chatModel: cm}
}

// NewOpenAIGenerator 创建 OpenAI 兼容生成器
func NewOpenAIGenerator(ctx context.Context, baseURL, apiKey, modelName string, timeout time.Duration) (*EinoGenerator, error) {
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return NewEinoGenerator(cm), nil
}

// Generate implements Generator
func (g *EinoGenerator) Generate(ctx context.Context, req Request) (string, error) {
	var messages []*schema.Message
	if req.System != "" {
		messages = append(messages, schema.SystemMessage(req.System))
	}
	messages = append(messages, schema.UserMessage(req.Prompt))

	var opts []model.Option
	if req.Temperature > 0 {
		opts = append(opts, model.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}

	resp, err := g.chatModel.Generate(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Content, nil
}
