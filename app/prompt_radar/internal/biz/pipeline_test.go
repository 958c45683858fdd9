package biz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/prompt"
)

// mockIntent 模拟意图分析
type mockIntent struct {
	out model.Outcome[model.IntentAnalysisResult]
}

func (m *mockIntent) Analyze(ctx context.Context, query string) model.Outcome[model.IntentAnalysisResult] {
	return m.out
}

// mockTrend 模拟趋势收集，记录收到的关键词
type mockTrend struct {
	out      model.Outcome[model.TrendResult]
	keywords []string
}

func (m *mockTrend) Collect(ctx context.Context, keywords []string, intent model.IntentAnalysisResult) model.Outcome[model.TrendResult] {
	m.keywords = keywords
	return m.out
}

func travel() model.IntentAnalysisResult {
	return model.IntentAnalysisResult{
		PrimaryIntent:  model.IntentContentCreation,
		Keywords:       []string{"제주도", "여행"},
		TargetAudience: "20-30대 커플",
		OutputType:     model.OutputBlog,
		Domain:         "여행",
		Confidence:     0.9,
	}
}

func TestPipelineUseCase_Analyze(t *testing.T) {
	trend := &mockTrend{out: model.Live(model.TrendResult{Trends: []string{"오름"}, Summary: "요약", Sources: []string{}})}
	uc := NewPipelineUseCase(&mockIntent{out: model.Live(travel())}, trend, log.DefaultLogger)

	a, err := uc.Analyze(context.Background(), "제주도 여행 블로그")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if strings.Join(trend.keywords, ",") != "제주도,여행" {
		t.Errorf("Collect() keywords = %v", trend.keywords)
	}
	if a.Query != "제주도 여행 블로그" || a.Intent.Domain != "여행" {
		t.Errorf("Analyze() = %+v", a)
	}
	if !strings.Contains(a.ConfirmationMessage, "1. 오름") {
		t.Errorf("ConfirmationMessage missing trends: %s", a.ConfirmationMessage)
	}
	if a.IntentDegraded || a.TrendsDegraded {
		t.Errorf("Analyze() degraded = %v/%v, want false", a.IntentDegraded, a.TrendsDegraded)
	}
}

func TestPipelineUseCase_AnalyzeDegraded(t *testing.T) {
	fallback := model.Fallback(travel(), errors.New("llm down"))
	trend := &mockTrend{out: model.Fallback(model.TrendResult{Trends: []string{}, Summary: "s", Sources: []string{}}, errors.New("llm down"))}
	uc := NewPipelineUseCase(&mockIntent{out: fallback}, trend, log.DefaultLogger)

	a, err := uc.Analyze(context.Background(), "q")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if !a.IntentDegraded || !a.TrendsDegraded {
		t.Errorf("Analyze() degraded = %v/%v, want true", a.IntentDegraded, a.TrendsDegraded)
	}
}

func TestPipelineUseCase_AnalyzeCancelled(t *testing.T) {
	uc := NewPipelineUseCase(&mockIntent{out: model.Live(travel())}, &mockTrend{}, log.DefaultLogger)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Analyze(ctx, "q"); !errors.Is(err, context.Canceled) {
		t.Errorf("Analyze() error = %v, want context.Canceled", err)
	}
}

func TestPipelineUseCase_GeneratePrompts(t *testing.T) {
	uc := NewPipelineUseCase(nil, nil, log.DefaultLogger)

	p, err := uc.GeneratePrompts(context.Background(), "q", travel(), model.TrendResult{})
	if err != nil {
		t.Fatalf("GeneratePrompts() error = %v", err)
	}
	if len(p.Generated.Prompts) != 5 {
		t.Errorf("GeneratePrompts() len = %d, want 5", len(p.Generated.Prompts))
	}
	if !strings.Contains(p.SelectionMessage, "5가지") {
		t.Errorf("SelectionMessage = %s", p.SelectionMessage)
	}

	bad := travel()
	bad.OutputType = "소설"
	if _, err := uc.GeneratePrompts(context.Background(), "q", bad, model.TrendResult{}); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("GeneratePrompts() error = %v, want ErrInvalidIntent", err)
	}
}

func TestPipelineUseCase_Finalize(t *testing.T) {
	uc := NewPipelineUseCase(nil, nil, log.DefaultLogger)

	fp, err := uc.Finalize(context.Background(), "structured", "q", travel(), model.TrendResult{Trends: []string{"a"}})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if fp.SelectedStrategy != model.StrategyStructured || fp.FinalPrompt == "" {
		t.Errorf("Finalize() = %+v", fp)
	}

	if _, err := uc.Finalize(context.Background(), "tree_of_thought", "q", travel(), model.TrendResult{}); !errors.Is(err, prompt.ErrUnknownStrategy) {
		t.Errorf("Finalize() error = %v, want ErrUnknownStrategy", err)
	}
}
