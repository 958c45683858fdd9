package model

import "fmt"

// IntentCategory 意图类别
type IntentCategory string

const (
	IntentInfoSearch      IntentCategory = "정보 검색"
	IntentContentCreation IntentCategory = "콘텐츠 생성"
	IntentProblemSolving  IntentCategory = "문제 해결"
	IntentLearning        IntentCategory = "학습/교육"
	IntentCreative        IntentCategory = "창작"
)

// IntentCategories 按固定顺序返回全部意图类别
func IntentCategories() []IntentCategory {
	return []IntentCategory{IntentInfoSearch, IntentContentCreation, IntentProblemSolving, IntentLearning, IntentCreative}
}

// Valid 判断是否为已知类别
func (c IntentCategory) Valid() bool {
	for _, v := range IntentCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// ParseIntentCategory 将字符串映射为意图类别
func ParseIntentCategory(s string) (IntentCategory, error) {
	c := IntentCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown intent category %q", s)
	}
	return c, nil
}

// OutputType 输出形式
type OutputType string

const (
	OutputBlog     OutputType = "블로그"
	OutputReport   OutputType = "리포트"
	OutputEssay    OutputType = "에세이"
	OutputAnalysis OutputType = "분석"
	OutputGuide    OutputType = "가이드"
	OutputTutorial OutputType = "튜토리얼"
)

// OutputTypes 按固定顺序返回全部输出形式
func OutputTypes() []OutputType {
	return []OutputType{OutputBlog, OutputReport, OutputEssay, OutputAnalysis, OutputGuide, OutputTutorial}
}

// Valid 是否为已知输出形式
func (o OutputType) Valid() bool {
	for _, v := range OutputTypes() {
		if o == v {
			return true
		}
	}
	return false
}

// ParseOutputType 将字符串解析为输出形式
func ParseOutputType(s string) (OutputType, error) {
	o := OutputType(s)
	if !o.Valid() {
		return "", fmt.Errorf("unknown output type %q", s)
	}
	return o, nil
}

// UserQuery 用户输入
type UserQuery struct {
	Query   string  `json:"query"`
	Context *string `json:"context,omitempty"`
}

// IntentAnalysisResult 意图分析结果
type IntentAnalysisResult struct {
	PrimaryIntent  IntentCategory `json:"primary_intent" validate:"intent_category"`
	Keywords       []string       `json:"keywords" validate:"min=1,dive,required"`
	TargetAudience string         `json:"target_audience" validate:"required"`
	OutputType     OutputType     `json:"output_type" validate:"output_type"`
	Domain         string         `json:"domain" validate:"required"`
	Confidence     float64        `json:"confidence" validate:"gte=0,lte=1"`
}

// TrendResult 趋势收集结果，Trends 的顺序有意义（模板按下标取用）
type TrendResult struct {
	Trends  []string `json:"trends"`
	Summary string   `json:"summary"`
	Sources []string `json:"sources"`
}

// Trend 返回第 i 条趋势，越界时返回 placeholder
func (t TrendResult) Trend(i int, placeholder string) string {
	if i >= 0 && i < len(t.Trends) {
		return t.Trends[i]
	}
	return placeholder
}

// Top 返回前 n 条趋势
func (t TrendResult) Top(n int) []string {
	if n > len(t.Trends) {
		n = len(t.Trends)
	}
	if n <= 0 {
		return nil
	}
	return t.Trends[:n]
}

// PromptStrategyType 提示词策略类型
type PromptStrategyType string

const (
	StrategyCoT        PromptStrategyType = "cot"
	StrategyFewShot    PromptStrategyType = "few_shot"
	StrategyMeta       PromptStrategyType = "meta"
	StrategySelfRefine PromptStrategyType = "self_refine"
	StrategyStructured PromptStrategyType = "structured"
)

// PromptStrategy 单个渲染后的提示词策略
type PromptStrategy struct {
	Type        PromptStrategyType `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
	BestFor     string             `json:"best_for"`
	Prompt      string             `json:"prompt"`
}

// GeneratedPrompts 五种策略的聚合结果
type GeneratedPrompts struct {
	Prompts []PromptStrategy     `json:"prompts"`
	Query   string               `json:"query"`
	Intent  IntentAnalysisResult `json:"intent"`
	Trends  TrendResult          `json:"trends"`
}

// StrategyDescriptor 策略目录条目
type StrategyDescriptor struct {
	Type        PromptStrategyType `json:"type"`
	Name        string             `json:"name"`
	Icon        string             `json:"icon"`
	Description string             `json:"description"`
	BestFor     string             `json:"best_for"`
}

// FinalPrompt 用户选定策略后的最终提示词
type FinalPrompt struct {
	SelectedStrategy PromptStrategyType `json:"selected_strategy"`
	FinalPrompt      string             `json:"final_prompt"`
	Metadata         map[string]any     `json:"metadata"`
}

// Outcome 区分真实数据与降级兜底数据
type Outcome[T any] struct {
	Value    T
	Degraded bool
	Cause    error
}

// Live 包装一次成功的结果
func Live[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Fallback 包装兜底结果以及导致兜底的原因
func Fallback[T any](v T, cause error) Outcome[T] {
	return Outcome[T]{Value: v, Degraded: true, Cause: cause}
}
