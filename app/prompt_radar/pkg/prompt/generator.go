package prompt

import (
	"errors"
	"fmt"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
)

// ErrUnknownStrategy 未知的策略类型
var ErrUnknownStrategy = errors.New("unknown prompt strategy")

type strategyInfo struct {
	name        string
	icon        string
	description string
	bestFor     string
	// 目录接口中使用的简短描述
	shortDescription string
	shortBestFor     string
	render           func(string, model.TrendResult, model.IntentAnalysisResult) string
}

// lookup 策略类型到元信息的映射，未知类型返回 false
func lookup(kind model.PromptStrategyType) (strategyInfo, bool) {
	switch kind {
	case model.StrategyCoT:
		return strategyInfo{
			name:             "사고 연쇄 (CoT)",
			icon:             "🧠",
			description:      "논리적 단계별 사고 과정을 통한 분석",
			bestFor:          "복잡한 계획, 분석, 문제 해결",
			shortDescription: "논리적 단계별 사고",
			shortBestFor:     "복잡한 계획/분석",
			render:           renderCoT,
		}, true
	case model.StrategyFewShot:
		return strategyInfo{
			name:             "예시 학습 (Few-Shot)",
			icon:             "📝",
			description:      "구체적인 예시를 통한 스타일 모방",
			bestFor:          "블로그, 에세이, 스타일 통일이 필요한 콘텐츠",
			shortDescription: "예시를 통한 스타일 모방",
			shortBestFor:     "블로그/에세이",
			render:           renderFewShot,
		}, true
	case model.StrategyMeta:
		return strategyInfo{
			name:             "전문가 모드 (Meta-Prompting)",
			icon:             "👨‍🏫",
			description:      "전문가 페르소나를 부여한 심층 분석",
			bestFor:          "전문적 리뷰, 객관적 분석, 권위 있는 콘텐츠",
			shortDescription: "전문가 페르소나",
			shortBestFor:     "객관적 분석",
			render:           renderMeta,
		}, true
	case model.StrategySelfRefine:
		return strategyInfo{
			name:             "자체 개선 (Self-Refine)",
			icon:             "🔄",
			description:      "초안부터 시작해 반복적으로 개선",
			bestFor:          "고퀄리티 콘텐츠, 정교한 글쓰기",
			shortDescription: "반복적 개선",
			shortBestFor:     "고퀄리티 콘텐츠",
			render:           renderSelfRefine,
		}, true
	case model.StrategyStructured:
		return strategyInfo{
			name:             "구조화 분석 (Structured)",
			icon:             "📊",
			description:      "체계적인 보고서 형식의 심층 분석",
			bestFor:          "데이터 분석, 리서치 보고서, 체계적 정리",
			shortDescription: "체계적 보고서",
			shortBestFor:     "데이터 분석/리서치",
			render:           renderStructured,
		}, true
	}
	return strategyInfo{}, false
}

// Types 按固定顺序返回全部策略类型
func Types() []model.PromptStrategyType {
	return []model.PromptStrategyType{
		model.StrategyCoT,
		model.StrategyFewShot,
		model.StrategyMeta,
		model.StrategySelfRefine,
		model.StrategyStructured,
	}
}

// ParseType 将字符串映射为策略类型
func ParseType(s string) (model.PromptStrategyType, error) {
	t := model.PromptStrategyType(s)
	if _, ok := lookup(t); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return t, nil
}

// Render 渲染单个策略
func Render(kind model.PromptStrategyType, query string, trends model.TrendResult, intent model.IntentAnalysisResult) (model.PromptStrategy, error) {
	info, ok := lookup(kind)
	if !ok {
		return model.PromptStrategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
	return model.PromptStrategy{
		Type:        kind,
		Name:        info.name,
		Description: info.description,
		Icon:        info.icon,
		BestFor:     info.bestFor,
		Prompt:      info.render(query, trends, intent),
	}, nil
}

// GenerateAll 按固定顺序渲染全部 5 种策略
func GenerateAll(query string, trends model.TrendResult, intent model.IntentAnalysisResult) model.GeneratedPrompts {
	kinds := Types()
	prompts := make([]model.PromptStrategy, 0, len(kinds))
	for _, kind := range kinds {
		p, _ := Render(kind, query, trends, intent)
		prompts = append(prompts, p)
	}
	return model.GeneratedPrompts{
		Prompts: prompts,
		Query:   query,
		Intent:  intent,
		Trends:  trends,
	}
}

// Catalog 策略目录
func Catalog() []model.StrategyDescriptor {
	kinds := Types()
	out := make([]model.StrategyDescriptor, 0, len(kinds))
	for _, kind := range kinds {
		info, _ := lookup(kind)
		out = append(out, model.StrategyDescriptor{
			Type:        kind,
			Name:        info.name,
			Icon:        info.icon,
			Description: info.shortDescription,
			BestFor:     info.shortBestFor,
		})
	}
	return out
}

// Finalize 渲染用户选定的策略，并附带生成时使用的上下文
func Finalize(kind model.PromptStrategyType, query string, trends model.TrendResult, intent model.IntentAnalysisResult) (model.FinalPrompt, error) {
	p, err := Render(kind, query, trends, intent)
	if err != nil {
		return model.FinalPrompt{}, err
	}
	return model.FinalPrompt{
		SelectedStrategy: kind,
		FinalPrompt:      p.Prompt,
		Metadata: map[string]any{
			"strategy_name":   p.Name,
			"icon":            p.Icon,
			"query":           query,
			"primary_intent":  intent.PrimaryIntent,
			"output_type":     intent.OutputType,
			"target_audience": intent.TargetAudience,
			"domain":          intent.Domain,
			"trend_count":     len(trends.Trends),
		},
	}, nil
}
