package prompt

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
)

// 下标越界时使用的占位文本
const (
	placeholderTrend     = "최신 트렌드"
	placeholderRelated   = "관련 트렌드"
	placeholderApproachA = "첫 번째 접근법"
	placeholderApproachB = "두 번째 접근법"
	placeholderApproachC = "세 번째 접근법"
	placeholderMissing   = "부족한 정보"
	placeholderExtra     = "추가 트렌드"
	placeholderLatest    = "최신 정보"
	placeholderIssue     = "관련 이슈"
	placeholderData      = "통계 및 데이터"
)

const cotTpl = `다음 단계에 따라 차근차근 생각해 봐:

**주제: %s**

**1단계: 현재 상황 분석**
- %s를 고려했을 때의 현황
- 사용자가 원하는 것: %s
- 대상 독자: %s

**2단계: 핵심 요소 파악**
- 트렌드 1: %s
- 트렌드 2: %s
- 이들이 주제에 미치는 영향 분석

**3단계: 구체적 계획 수립**
다음 관점에서 접근:
- [A] %s
- [B] %s
- [C] %s

**4단계: 최종 정리 및 제안**
- %s 형식으로 정리
- 핵심 메시지와 실행 가능한 제안 포함

각 단계별로 왜 그렇게 판단했는지 논리적으로 설명하며 답변해줘.
`

func renderCoT(query string, trends model.TrendResult, intent model.IntentAnalysisResult) string {
	return fmt.Sprintf(cotTpl,
		query,
		trends.Trend(0, placeholderTrend),
		intent.PrimaryIntent,
		intent.TargetAudience,
		trends.Trend(1, placeholderRelated),
		trends.Trend(2, placeholderRelated),
		trends.Trend(3, placeholderApproachA),
		trends.Trend(4, placeholderApproachB),
		trends.Trend(5, placeholderApproachC),
		intent.OutputType,
	)
}

const fewShotTpl = `아래 예시들의 스타일을 참고하여 %s 형식으로 작성해줘:

%s

이제 다음 주제로 작성해줘:

**주제:** %s

**반영할 최신 트렌드:**
%s

**대상 독자:** %s

**작성 규칙:**
1. 위 예시들의 톤과 구조를 유지할 것
2. 최신 트렌드를 자연스럽게 녹여낼 것
3. %s가 공감할 수 있는 내용으로 작성
4. %s 형식에 맞는 길이와 구조 유지
`

const blogExamples = `
**[예시 1: 여행 블로그]**
"첫눈이 내리는 날, 손을 꼭 잡고 걷고 싶은 곳. 북촌 한옥마을 골목길에는 따스한 불빛이 켜지고,
겨울 바람에 실려오는 따끈한 붕어빵 냄새가 발걸음을 멈추게 한다..."

**[예시 2: 맛집 블로그]**
"을지로 골목 깊숙한 곳, 70년 전통의 작은 식당. 낡은 간판 뒤로 숨은 진짜 맛을 찾아가는 설렘.
첫 입에 느껴지는 깊은 육수의 풍미는..."
`

const reportExample = `
**[예시: 시장 분석 리포트]**
"2025년 1분기 시장 분석 결과, 3가지 주요 트렌드가 관찰되었다.
첫째, AI 기술 도입률이 전년 대비 47% 증가했으며..."
`

const guideExample = `
**[예시: 가이드]**
"초보자를 위한 3단계 가이드를 소개합니다.
1단계: 기본 개념 이해하기 - 가장 먼저 알아야 할 핵심은..."
`

// examplesFor 按输出形式挑选示例
func examplesFor(o model.OutputType) string {
	switch o {
	case model.OutputBlog:
		return blogExamples
	case model.OutputReport:
		return reportExample
	default:
		return guideExample
	}
}

func renderFewShot(query string, trends model.TrendResult, intent model.IntentAnalysisResult) string {
	return fmt.Sprintf(fewShotTpl,
		intent.OutputType,
		examplesFor(intent.OutputType),
		query,
		bullets(trends.Top(3), placeholderTrend),
		intent.TargetAudience,
		intent.TargetAudience,
		intent.OutputType,
	)
}

const metaTpl = `당신은 15년 경력의 %s 분야 전문가입니다.

**전문 지식:**
- %s에 대한 심층 이해
- %s 전문가
- 풍부한 실무 경험과 데이터 분석 능력 보유

**페르소나:**
- 역할: %s 전문 컨설턴트
- 강점: 객관적 데이터 기반 분석, 실용적 조언
- 스타일: 전문적이지만 이해하기 쉽게 설명

**작성할 주제:**
"%s"

**반영할 최신 정보:**
%s

**작성 규칙:**
1. 전문가 관점에서 객관적으로 분석
2. 데이터와 사례를 근거로 제시
3. %s가 이해할 수 있는 수준으로 설명
4. 실용적이고 실행 가능한 조언 제공
5. %s 형식으로 체계적으로 구성

전문가로서 깊이 있는 분석과 통찰을 제공해주세요.
`

func renderMeta(query string, trends model.TrendResult, intent model.IntentAnalysisResult) string {
	domainTrend := intent.Domain + " 최신 동향"
	return fmt.Sprintf(metaTpl,
		intent.Domain,
		trends.Trend(0, placeholderTrend),
		trends.Trend(1, domainTrend),
		intent.Domain,
		query,
		bullets(trends.Top(5), domainTrend),
		intent.TargetAudience,
		intent.OutputType,
	)
}

const selfRefineTpl = `"%s"에 대한 %s를 3단계로 개선하며 작성해줘:

**[1단계: 초안 작성]**
일단 다음을 고려해서 빠르게 작성:
- 핵심 주제: %s
- 주요 트렌드: %s
- 대상: %s

초안을 작성한 후 "=== 초안 완료 ===" 표시

**[2단계: 1차 수정]**
초안을 검토하고 다음을 개선:

✅ 추가할 내용:
- %s 보완
- %s 반영

✅ 수정할 부분:
- 애매한 표현을 명확하게
- 구조와 흐름 개선
- 불필요한 반복 제거

1차 수정 후 "=== 1차 수정 완료 ===" 표시

**[3단계: 최종본]**
1차 수정본을 다시 검토하고:

✅ 마지막 점검:
- %s 최종 반영
- %s에게 더 와닿게 조정
- 임팩트 있는 시작과 마무리
- 전체 톤과 일관성 확인

✅ 폴리싱:
- 문장 다듬기
- 가독성 향상
- %s 형식에 최적화

최종본 작성 후 "=== 최종본 완료 ===" 표시

**중요:** 각 단계를 모두 보여주고, 무엇을 왜 수정했는지 간단히 설명해줘.
`

func renderSelfRefine(query string, trends model.TrendResult, intent model.IntentAnalysisResult) string {
	return fmt.Sprintf(selfRefineTpl,
		query,
		intent.OutputType,
		query,
		trends.Trend(0, placeholderTrend),
		intent.TargetAudience,
		trends.Trend(1, placeholderMissing),
		trends.Trend(2, placeholderExtra),
		trends.Trend(3, placeholderLatest),
		intent.TargetAudience,
		intent.OutputType,
	)
}

const structuredTpl = `"%s"를 체계적으로 분석하여 %s 형식의 보고서로 작성:

## 📋 1. 개요 및 현황 분석

### 1.1 주제 정의
- 핵심 주제: %s
- 분석 목적: %s
- 대상 독자: %s

### 1.2 현재 상황
- 시장/분야 동향: %s
- 주요 이슈: %s
- 최신 데이터: %s

## 🔍 2. 트렌드 인사이트

### 2.1 주요 트렌드
%s

### 2.2 트렌드 분석
- 각 트렌드의 의미와 영향
- 상호 연관성 분석
- 향후 전망

## 💡 3. 실전 활용 방안

### 3.1 즉시 적용 가능한 전략
[구체적 액션 아이템 3-5가지]

### 3.2 중장기 전략
[지속 가능한 접근법]

### 3.3 주의사항 및 위험 요소
[고려해야 할 사항들]

## 📊 4. 결론 및 제언

### 4.1 핵심 요약
- 주요 발견사항 (3-5개 포인트)
- 가장 중요한 인사이트

### 4.2 최종 제언
- %s를 위한 구체적 조언
- 다음 단계 액션 플랜

---

**작성 시 유의사항:**
- 각 섹션을 체계적으로 작성
- 데이터와 근거를 명확히 제시
- 실용적이고 실행 가능한 내용 포함
- %s 형식에 맞게 구조화
`

func renderStructured(query string, trends model.TrendResult, intent model.IntentAnalysisResult) string {
	top := trends.Top(5)
	if len(top) == 0 {
		top = []string{placeholderTrend}
	}
	lines := make([]string, 0, len(top))
	for i, t := range top {
		lines = append(lines, fmt.Sprintf("**트렌드 %d:** %s", i+1, t))
	}

	return fmt.Sprintf(structuredTpl,
		query,
		intent.OutputType,
		query,
		intent.PrimaryIntent,
		intent.TargetAudience,
		trends.Trend(0, placeholderTrend),
		trends.Trend(1, placeholderIssue),
		trends.Trend(2, placeholderData),
		strings.Join(lines, "\n"),
		intent.TargetAudience,
		intent.OutputType,
	)
}

// bullets 渲染 "- item" 列表，列表为空时输出一行占位
func bullets(items []string, placeholder string) string {
	if len(items) == 0 {
		return "- " + placeholder
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it)
	}
	return strings.Join(lines, "\n")
}
