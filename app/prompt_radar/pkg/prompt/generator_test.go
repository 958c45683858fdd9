package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
)

func sampleIntent(o model.OutputType) model.IntentAnalysisResult {
	return model.IntentAnalysisResult{
		PrimaryIntent:  model.IntentContentCreation,
		Keywords:       []string{"서울", "겨울", "데이트"},
		TargetAudience: "20-30대 커플",
		OutputType:     o,
		Domain:         "여행",
		Confidence:     0.9,
	}
}

func sampleTrends(n int) model.TrendResult {
	trends := make([]string, n)
	for i := range trends {
		trends[i] = fmt.Sprintf("트렌드-%d", i)
	}
	return model.TrendResult{Trends: trends, Summary: "요약", Sources: []string{}}
}

func TestGenerateAll_OrderAndDeterminism(t *testing.T) {
	query := "서울 겨울 데이트 코스"
	a := GenerateAll(query, sampleTrends(10), sampleIntent(model.OutputBlog))
	b := GenerateAll(query, sampleTrends(10), sampleIntent(model.OutputBlog))
	assert.Equal(t, a, b)

	require.Len(t, a.Prompts, 5)
	for i, kind := range Types() {
		assert.Equal(t, kind, a.Prompts[i].Type)
		assert.NotEmpty(t, a.Prompts[i].Prompt)
		assert.Contains(t, a.Prompts[i].Prompt, query)
	}
	assert.Equal(t, query, a.Query)
}

func TestGenerateAll_EmptyTrends(t *testing.T) {
	out := GenerateAll("", model.TrendResult{}, sampleIntent(model.OutputGuide))
	require.Len(t, out.Prompts, 5)
	for _, p := range out.Prompts {
		assert.NotEmpty(t, p.Prompt, p.Type)
	}

	cot := out.Prompts[0].Prompt
	assert.Contains(t, cot, "- 최신 트렌드를 고려했을 때의 현황")
	assert.Contains(t, cot, "- 트렌드 1: 관련 트렌드")
	assert.Contains(t, cot, "- [C] 세 번째 접근법")

	assert.Contains(t, out.Prompts[2].Prompt, "- 여행 최신 동향 전문가")
	assert.Contains(t, out.Prompts[3].Prompt, "- 부족한 정보 보완")
	assert.Contains(t, out.Prompts[4].Prompt, "- 주요 이슈: 관련 이슈")
	assert.Contains(t, out.Prompts[4].Prompt, "**트렌드 1:** 최신 트렌드")
}

func TestRender_CoTPositions(t *testing.T) {
	p, err := Render(model.StrategyCoT, "q", sampleTrends(4), sampleIntent(model.OutputReport))
	require.NoError(t, err)
	assert.Contains(t, p.Prompt, "- 트렌드-0를 고려했을 때의 현황")
	assert.Contains(t, p.Prompt, "- 트렌드 2: 트렌드-2")
	assert.Contains(t, p.Prompt, "- [A] 트렌드-3")
	assert.Contains(t, p.Prompt, "- [B] 두 번째 접근법")
	assert.Contains(t, p.Prompt, "- 리포트 형식으로 정리")
	assert.Equal(t, "🧠", p.Icon)
}

func TestRender_FewShotExamples(t *testing.T) {
	cases := map[model.OutputType]string{
		model.OutputBlog:     "[예시 1: 여행 블로그]",
		model.OutputReport:   "[예시: 시장 분석 리포트]",
		model.OutputTutorial: "[예시: 가이드]",
		model.OutputEssay:    "[예시: 가이드]",
	}
	for o, want := range cases {
		p, err := Render(model.StrategyFewShot, "q", sampleTrends(2), sampleIntent(o))
		require.NoError(t, err)
		assert.Contains(t, p.Prompt, want, o)
		assert.Contains(t, p.Prompt, "- 트렌드-0\n- 트렌드-1\n\n**대상 독자:**", o)
	}

	p, _ := Render(model.StrategyFewShot, "q", sampleTrends(2), sampleIntent(model.OutputBlog))
	assert.Contains(t, p.Prompt, "[예시 2: 맛집 블로그]")
	assert.NotContains(t, p.Prompt, "시장 분석 리포트")
}

func TestRender_StructuredTopFive(t *testing.T) {
	p, err := Render(model.StrategyStructured, "q", sampleTrends(8), sampleIntent(model.OutputAnalysis))
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(p.Prompt, "**트렌드 "))
	assert.Contains(t, p.Prompt, "**트렌드 5:** 트렌드-4")
}

func TestRender_UnknownStrategy(t *testing.T) {
	_, err := Render("zero_shot", "q", sampleTrends(1), sampleIntent(model.OutputBlog))
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = ParseType("zero_shot")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	kind, err := ParseType("self_refine")
	require.NoError(t, err)
	assert.Equal(t, model.StrategySelfRefine, kind)
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	require.Len(t, c, 5)
	assert.Equal(t, model.StrategyDescriptor{
		Type:        model.StrategyCoT,
		Name:        "사고 연쇄 (CoT)",
		Icon:        "🧠",
		Description: "논리적 단계별 사고",
		BestFor:     "복잡한 계획/분석",
	}, c[0])
	assert.Equal(t, model.StrategyStructured, c[4].Type)
}

func TestFinalize(t *testing.T) {
	fp, err := Finalize(model.StrategyMeta, "AI 트렌드", sampleTrends(3), sampleIntent(model.OutputAnalysis))
	require.NoError(t, err)
	assert.Equal(t, model.StrategyMeta, fp.SelectedStrategy)
	assert.Contains(t, fp.FinalPrompt, "당신은 15년 경력의 여행 분야 전문가입니다.")
	assert.Equal(t, 3, fp.Metadata["trend_count"])
	assert.Equal(t, "전문가 모드 (Meta-Prompting)", fp.Metadata["strategy_name"])

	_, err = Finalize("unknown", "q", sampleTrends(0), sampleIntent(model.OutputAnalysis))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
