package v1

import (
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
)

type IndexRequest struct{}

type IndexReply struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthRequest struct{}

type HealthReply struct {
	Status string `json:"status"`
}

type ListStrategiesRequest struct{}

type ListStrategiesReply struct {
	Strategies []model.StrategyDescriptor `json:"strategies"`
}

// AnalyzeRequest 第一步：用户输入
type AnalyzeRequest struct {
	Query   string  `json:"query"`
	Context *string `json:"context,omitempty"`
}

// AnalyzeReply 第一步：意图、趋势和确认消息
type AnalyzeReply struct {
	Query               string                     `json:"query"`
	Intent              model.IntentAnalysisResult `json:"intent"`
	Trends              model.TrendResult          `json:"trends"`
	ConfirmationMessage string                     `json:"confirmation_message"`
}

// GeneratePromptsRequest 第二步的输入就是第一步的输出
type GeneratePromptsRequest = AnalyzeReply

type GeneratePromptsReply struct {
	Prompts          model.GeneratedPrompts `json:"prompts"`
	SelectionMessage string                 `json:"selection_message"`
}

type PipelineRequest = AnalyzeRequest

type PipelineReply struct {
	Analysis *AnalyzeReply         `json:"analysis"`
	Prompts  *GeneratePromptsReply `json:"prompts"`
	Status   string                `json:"status"`
}

// FinalPromptRequest 用户选定策略后生成最终提示词
type FinalPromptRequest struct {
	StrategyType string                     `json:"strategy_type"`
	Query        string                     `json:"query"`
	Intent       model.IntentAnalysisResult `json:"intent"`
	Trends       model.TrendResult          `json:"trends"`
}

type FinalPromptReply struct {
	SelectedStrategy model.PromptStrategyType `json:"selected_strategy"`
	FinalPrompt      string                   `json:"final_prompt"`
	Metadata         map[string]any           `json:"metadata"`
}
