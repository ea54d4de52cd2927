package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSettings() Settings {
	return Settings{
		Mode:             ModeDeliverable,
		OutlineMode:      FullWrite,
		TonePreset:       ToneAcademic,
		SelfCheckEnabled: true,
		ModelPreference:  "ChatGPT",
		LanguageLevel:    LangLevelUG,
		SubjectProfile: SubjectProfile{
			Level: LevelUG3,
		},
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	s := baseSettings()
	in := ReportEssayInputs{Topic: "AI 윤리", StageDraft: true}

	first := BuildPrompt(s, in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildPrompt(s, in))
	}
}

func TestBuildPrompt_SectionOrder(t *testing.T) {
	s := baseSettings()
	s.IncludeReferences = true
	out := BuildPrompt(s, ReportEssayInputs{Topic: "주제", StageOutline: true})

	order := []string{
		"# 역할 정의",
		"# 응답 모드",
		"# 작성 형식",
		"# 말투",
		"## 출처 제안 요청",
		"## 작업 지시: 레포트/에세이 작성",
		"# 답변 품질 관리",
	}
	prev := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", marker)
		assert.Greater(t, idx, prev, "section %q out of order", marker)
		prev = idx
	}
}

func TestBuildPrompt_SectionsJoinedWithSeparator(t *testing.T) {
	out := BuildPrompt(baseSettings(), ImageInputs{Subject: "로고"})
	assert.Contains(t, out, "\n\n---\n\n")
	assert.False(t, strings.HasPrefix(out, "---"))
	assert.False(t, strings.HasSuffix(strings.TrimSpace(out), "---"))
}

func TestBuildPrompt_EmptySectionsDropped(t *testing.T) {
	// No references, no self-check: the common-options section is empty
	// and must not leave a dangling separator.
	s := baseSettings()
	s.SelfCheckEnabled = false
	out := BuildPrompt(s, ReportEssayInputs{Topic: "주제"})

	assert.NotContains(t, out, "## 출처 제안 요청")
	assert.NotContains(t, out, "## 자기검토 요청")
	assert.NotContains(t, out, sectionSeparator+sectionSeparator)
}

func TestBuildRoleAndContext_OmitsEmptyProfileBlock(t *testing.T) {
	s := Settings{Mode: ModeDeliverable, OutlineMode: FullWrite, TonePreset: ToneAcademic}
	out := buildRoleAndContext(s)

	assert.Contains(t, out, "# 역할 정의")
	assert.NotContains(t, out, "## 맥락 정보")
	assert.NotContains(t, out, "## 스타일 참고")
	assert.NotContains(t, out, "## 시간 제약")
}

func TestBuildRoleAndContext_BulletsInFixedOrder(t *testing.T) {
	s := baseSettings()
	s.SubjectProfile.CourseName = "현대사회와 윤리"
	s.UserProfile.Major = "컴퓨터공학"
	out := buildRoleAndContext(s)

	assert.Contains(t, out, "- 과목: 현대사회와 윤리")
	assert.Contains(t, out, "- 학년: 대학교 3학년")
	assert.Contains(t, out, "- 사용자 전공: 컴퓨터공학")
	assert.Less(t,
		strings.Index(out, "- 과목:"),
		strings.Index(out, "- 사용자 전공:"))
}

func TestBuildRoleAndContext_TimePressure(t *testing.T) {
	s := baseSettings()
	s.TimePressure = &TimePressure{DeadlineDescription: "과제 마감까지 3일 남음"}
	out := buildRoleAndContext(s)

	assert.Contains(t, out, "## 시간 제약")
	assert.Contains(t, out, "- 마감: 과제 마감까지 3일 남음")
	assert.Contains(t, out, "가장 중요한 내용을 우선적으로")
}

func TestBuildAIPolicyAndMode_QuotesPolicyLines(t *testing.T) {
	s := baseSettings()
	s.AIPolicyText = "첫 줄\n둘째 줄"
	out := buildAIPolicyAndMode(s)

	assert.Contains(t, out, "# AI 사용 규정")
	assert.Contains(t, out, "> 첫 줄\n> 둘째 줄")
}

func TestBuildAIPolicyAndMode_LearningVsDeliverable(t *testing.T) {
	s := baseSettings()

	s.Mode = ModeLearning
	learning := buildAIPolicyAndMode(s)
	assert.Contains(t, learning, "## 학습 모드")
	assert.Contains(t, learning, "정답을 바로 제시하지 마세요")
	assert.NotContains(t, learning, "## 결과물 모드")

	s.Mode = ModeDeliverable
	deliverable := buildAIPolicyAndMode(s)
	assert.Contains(t, deliverable, "## 결과물 모드")
	assert.Contains(t, deliverable, "표절 검사")
	assert.NotContains(t, deliverable, "## 학습 모드")
}

func TestBuildToneSetting_AllPresets(t *testing.T) {
	tests := []struct {
		preset TonePreset
		want   string
	}{
		{ToneAcademic, "# 말투: 학술적 보고서체"},
		{ToneReport, "# 말투: 교수 제출용 보고서체"},
		{ToneCasual, "# 말투: 캐주얼 설명체"},
		{ToneFormalEmail, "# 말투: 극존대 이메일체"},
		{TonePresentation, "# 말투: 발표 대본용 구어체"},
	}
	for _, tt := range tests {
		s := baseSettings()
		s.TonePreset = tt.preset
		assert.Contains(t, buildToneSetting(s), tt.want)
	}
}

func TestBuildToneSetting_UnknownPresetFallsBack(t *testing.T) {
	s := baseSettings()
	s.TonePreset = TonePreset("weird")
	out := buildToneSetting(s)

	assert.Contains(t, out, "# 말투: 일반")
	assert.Contains(t, out, "상황에 맞는 적절한 말투로 작성해 주세요.")
}

func TestBuildReflectionPattern_FlippedInteractionOnlyInLearning(t *testing.T) {
	s := baseSettings()

	s.Mode = ModeLearning
	assert.Contains(t, buildReflectionPattern(s), "Flipped Interaction")

	s.Mode = ModeDeliverable
	out := buildReflectionPattern(s)
	assert.NotContains(t, out, "Flipped Interaction")
	assert.Contains(t, out, "## 논리 점검")
}

func TestBuildPrompt_UnknownTabInputs(t *testing.T) {
	out := buildTabContent(baseSettings(), nil)
	assert.Empty(t, out)
}

// End-to-end scenario: deliverable mode, full writing, academic tone,
// report with only the draft stage enabled.
func TestBuildPrompt_ReportScenario(t *testing.T) {
	s := baseSettings()
	in := ReportEssayInputs{
		Topic:        "AI ethics",
		LengthTarget: "약 1500자",
		StageDraft:   true,
	}
	out := BuildPrompt(s, in)

	assert.Contains(t, out, "## 결과물 모드")
	assert.Contains(t, out, "# 작성 형식: 완전 작성")
	assert.Contains(t, out, "# 말투: 학술적 보고서체")
	assert.Contains(t, out, "### 주제\nAI ethics")
	assert.Contains(t, out, "**1단계: 본문 초안 작성**")
	assert.Contains(t, out, "목표 분량(약 1500자)에 맞춰")

	assert.NotContains(t, out, "자료 조사·정리")
	assert.NotContains(t, out, "아웃라인 구성")
	assert.NotContains(t, out, "## 학습 모드")
	assert.NotContains(t, out, "2단계")
}
