package confirm

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/model"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━"

const confirmationTpl = `
📌 **이런 내용을 찾았어요!**

%[1]s

**🎯 주제 분석:**
- 입력하신 내용: "%[2]s"
- 파악된 목적: %[3]s
- 예상 형식: %[4]s
- 대상 독자: %[5]s

%[1]s

**🔥 최신 트렌드 TOP 10:**

%[6]s

%[1]s

**💬 요약:**
%[7]s

%[1]s

**✅ 이 방향이 맞나요?**

- 맞다면 → 5가지 프롬프팅 전략을 생성해드립니다
- 수정이 필요하다면 → 어떤 부분을 조정할지 알려주세요
`

// ConfirmationMessage 分析完成后给用户确认的消息
func ConfirmationMessage(query string, intent model.IntentAnalysisResult, trends model.TrendResult) string {
	lines := make([]string, 0, len(trends.Trends))
	for i, t := range trends.Trends {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, t))
	}
	return fmt.Sprintf(confirmationTpl,
		divider,
		query,
		intent.PrimaryIntent,
		intent.OutputType,
		intent.TargetAudience,
		strings.Join(lines, "\n"),
		trends.Summary,
	)
}

const selectionTpl = `
✨ **%[2]d가지 프롬프팅 전략을 생성했어요!**

각 전략을 확인하고 원하는 것을 선택해주세요.

%[1]s

**1️⃣ 사고 연쇄 (CoT)**
🧠 논리적 단계별 사고
💡 최적: 복잡한 계획/분석에 최적

**2️⃣ 예시 학습 (Few-Shot)**
📝 스타일 모방 & 형식 통일
💡 최적: 블로그/에세이 작성

**3️⃣ 전문가 모드 (Meta-Prompting)**
👨‍🏫 전문가 페르소나 부여
💡 최적: 객관적 리뷰/분석

**4️⃣ 자체 개선 (Self-Refine)**
🔄 초안 → 수정 → 완성
💡 최적: 고퀄리티 콘텐츠

**5️⃣ 구조화 분석 (Structured)**
📊 체계적 보고서 형식
💡 최적: 데이터 분석/리서치

%[1]s

어떤 전략을 사용하시겠어요?
`

// StrategySelectionMessage 策略生成后引导用户选择的消息
func StrategySelectionMessage(count int) string {
	return fmt.Sprintf(selectionTpl, divider, count)
}
