package intent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/llm"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/logger"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/metrics"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
)

const (
	temperature = 0.3
	maxTokens   = 1024
)

const promptTpl = `
다음 사용자 쿼리를 분석하여 의도를 파악해주세요.

사용자 쿼리: "%s"

다음 항목들을 JSON 형식으로 반환해주세요:
{
    "primary_intent": "정보 검색" | "콘텐츠 생성" | "문제 해결" | "학습/교육" | "창작",
    "keywords": ["키워드1", "키워드2", "키워드3"],  // 3-5개의 핵심 키워드
    "target_audience": "대상 독자 설명",  // 예: "20-30대 커플", "투자자", "개발자" 등
    "output_type": "블로그" | "리포트" | "에세이" | "분석" | "가이드" | "튜토리얼",
    "domain": "주제 분야",  // 예: "여행", "투자", "기술", "교육" 등
    "confidence": 0.0-1.0  // 분석 신뢰도
}

분석 시 고려사항:
1. 사용자가 무엇을 원하는지 (목적)
2. 어떤 형태의 결과물이 필요한지 (형식)
3. 누구를 위한 것인지 (대상)
4. 어느 분야/주제인지 (영역)

JSON만 반환하고 다른 설명은 하지 마세요.
`

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("intent_category", func(fl validator.FieldLevel) bool {
		return model.IntentCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("output_type", func(fl validator.FieldLevel) bool {
		return model.OutputType(fl.Field().String()).Valid()
	})
	return v
}

// Analyzer 用户意图分析器
type Analyzer struct {
	gen llm.Generator
}

// NewAnalyzer 创建分析器
func NewAnalyzer(gen llm.Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Analyze 分析查询意图。任何失败都返回兜底结果，Degraded 标记为 true
func (a *Analyzer) Analyze(ctx context.Context, query string) model.Outcome[model.IntentAnalysisResult] {
	result, err := a.analyze(ctx, query)
	if err != nil {
		logger.Component("intent").Warnf("意图分析失败，使用默认结果: %v", err)
		metrics.RecordFallback("intent")
		return model.Fallback(Default(query), err)
	}
	return model.Live(*result)
}

func (a *Analyzer) analyze(ctx context.Context, query string) (*model.IntentAnalysisResult, error) {
	content, err := a.gen.Generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(promptTpl, query),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return Parse(content)
}

// intentReply 模型输出，confidence 用指针区分缺失和 0
type intentReply struct {
	model.IntentAnalysisResult
	Confidence *float64 `json:"confidence" validate:"required,gte=0,lte=1"`
}

// Parse 解析并校验模型输出，缺少任一字段都视为失败
func Parse(content string) (*model.IntentAnalysisResult, error) {
	var r intentReply
	if err := json.Unmarshal([]byte(llm.CleanJSON(content)), &r); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := validate.Struct(&r); err != nil {
		return nil, fmt.Errorf("invalid intent: %w", err)
	}
	result := r.IntentAnalysisResult
	result.Confidence = *r.Confidence
	return &result, nil
}

// Default 兜底意图
func Default(query string) model.IntentAnalysisResult {
	return model.IntentAnalysisResult{
		PrimaryIntent:  model.IntentInfoSearch,
		Keywords:       []string{query},
		TargetAudience: "일반 사용자",
		OutputType:     model.OutputGuide,
		Domain:         "일반",
		Confidence:     0.5,
	}
}
