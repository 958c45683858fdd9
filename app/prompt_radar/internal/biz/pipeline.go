package biz

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/confirm"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/prompt"
)

// ProviderSet 业务层 Provider 集合
var ProviderSet = wire.NewSet(NewPipelineUseCase)

// ErrInvalidIntent 客户端回传的意图中含有未知枚举值
var ErrInvalidIntent = errors.New("invalid intent")

// IntentAnalyzer 意图分析，失败时返回降级结果而不是错误
type IntentAnalyzer interface {
	Analyze(ctx context.Context, query string) model.Outcome[model.IntentAnalysisResult]
}

// TrendCollector 趋势收集，失败时返回降级结果而不是错误
type TrendCollector interface {
	Collect(ctx context.Context, keywords []string, intent model.IntentAnalysisResult) model.Outcome[model.TrendResult]
}

// Analysis 第一步的结果
type Analysis struct {
	Query               string
	Intent              model.IntentAnalysisResult
	Trends              model.TrendResult
	ConfirmationMessage string
	IntentDegraded      bool
	TrendsDegraded      bool
}

// Prompts 第二步的结果
type Prompts struct {
	Generated        model.GeneratedPrompts
	SelectionMessage string
}

// PipelineUseCase 分析 -> 趋势 -> 提示词 的业务流程
type PipelineUseCase struct {
	intent IntentAnalyzer
	trend  TrendCollector
	log    *log.Helper
}

// NewPipelineUseCase 创建业务流程实例
func NewPipelineUseCase(intent IntentAnalyzer, trend TrendCollector, logger log.Logger) *PipelineUseCase {
	return &PipelineUseCase{intent: intent, trend: trend, log: log.NewHelper(logger)}
}

// Analyze 意图分析、趋势收集并生成确认消息
func (uc *PipelineUseCase) Analyze(ctx context.Context, query string) (*Analysis, error) {
	intent := uc.intent.Analyze(ctx, query)
	trends := uc.trend.Collect(ctx, intent.Value.Keywords, intent.Value)

	// 请求已取消时降级结果没有意义
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("request aborted: %w", err)
	}

	if intent.Degraded || trends.Degraded {
		uc.log.WithContext(ctx).Warnw(
			"msg", "analysis served with fallback data",
			"intent_degraded", intent.Degraded,
			"trends_degraded", trends.Degraded,
		)
	}

	return &Analysis{
		Query:               query,
		Intent:              intent.Value,
		Trends:              trends.Value,
		ConfirmationMessage: confirm.ConfirmationMessage(query, intent.Value, trends.Value),
		IntentDegraded:      intent.Degraded,
		TrendsDegraded:      trends.Degraded,
	}, nil
}

// GeneratePrompts 渲染全部策略并生成选择提示
func (uc *PipelineUseCase) GeneratePrompts(_ context.Context, query string, intent model.IntentAnalysisResult, trends model.TrendResult) (*Prompts, error) {
	if err := checkIntent(intent); err != nil {
		return nil, err
	}

	generated := prompt.GenerateAll(query, trends, intent)
	return &Prompts{
		Generated:        generated,
		SelectionMessage: confirm.StrategySelectionMessage(len(generated.Prompts)),
	}, nil
}

// Finalize 渲染用户选定的策略
func (uc *PipelineUseCase) Finalize(_ context.Context, strategy string, query string, intent model.IntentAnalysisResult, trends model.TrendResult) (model.FinalPrompt, error) {
	kind, err := prompt.ParseType(strategy)
	if err != nil {
		return model.FinalPrompt{}, err
	}
	if err := checkIntent(intent); err != nil {
		return model.FinalPrompt{}, err
	}
	return prompt.Finalize(kind, query, trends, intent)
}

func checkIntent(intent model.IntentAnalysisResult) error {
	if !intent.PrimaryIntent.Valid() {
		return fmt.Errorf("%w: unknown intent category %q", ErrInvalidIntent, intent.PrimaryIntent)
	}
	if !intent.OutputType.Valid() {
		return fmt.Errorf("%w: unknown output type %q", ErrInvalidIntent, intent.OutputType)
	}
	return nil
}

// Strategies 策略目录
func (uc *PipelineUseCase) Strategies() []model.StrategyDescriptor {
	return prompt.Catalog()
}
