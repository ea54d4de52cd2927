package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportEssay_StageNumberingSkipsDisabled(t *testing.T) {
	s := baseSettings()

	// Outline and draft enabled, research off: ordinals compact to 1, 2.
	out := buildReportEssay(s, ReportEssayInputs{
		Topic:        "주제",
		StageOutline: true,
		StageDraft:   true,
	})
	assert.Contains(t, out, "**1단계: 아웃라인 구성**")
	assert.Contains(t, out, "**2단계: 본문 초안 작성**")
	assert.NotContains(t, out, "자료 조사·정리")
	assert.NotContains(t, out, "3단계")
}

func TestBuildReportEssay_AllThreeStages(t *testing.T) {
	out := buildReportEssay(baseSettings(), ReportEssayInputs{
		Topic:                "주제",
		StageCollectMaterial: true,
		StageOutline:         true,
		StageDraft:           true,
	})
	assert.Contains(t, out, "**1단계: 자료 조사·정리**")
	assert.Contains(t, out, "**2단계: 아웃라인 구성**")
	assert.Contains(t, out, "**3단계: 본문 초안 작성**")
	assert.Contains(t, out, "다음 순서로 진행해 주세요: 자료 조사 → 아웃라인 → 초안 작성")
}

func TestBuildReportEssay_NoStages(t *testing.T) {
	out := buildReportEssay(baseSettings(), ReportEssayInputs{Topic: "주제"})
	assert.NotContains(t, out, "### 작업 단계")
	assert.NotContains(t, out, "단계:")
}

func TestBuildReportEssay_OutlineShapeFollowsRequiredSections(t *testing.T) {
	withSections := buildReportEssay(baseSettings(), ReportEssayInputs{
		RequiredSections: "3단락 (서론-본론-결론)",
		StageOutline:     true,
	})
	assert.Contains(t, withSections, "과제에서 요구한 형식에 맞춰")

	without := buildReportEssay(baseSettings(), ReportEssayInputs{StageOutline: true})
	assert.Contains(t, without, "서론-본론-결론 구조로")
}

func TestBuildExam_SummaryAndPracticeBlocks(t *testing.T) {
	s := baseSettings()
	out := buildExam(s, ExamInputs{
		ExamScope:        "3장~5장",
		WantSummarySheet: true,
		WantPracticeSet:  true,
	})
	assert.Contains(t, out, "### 시험 범위\n3장~5장")
	assert.Contains(t, out, "### 요약 노트 요청")
	assert.Contains(t, out, "### 예상 문제 세트 요청")
}

func TestBuildExam_PracticeBranchesOnMode(t *testing.T) {
	in := ExamInputs{WantPracticeSet: true}

	s := baseSettings()
	s.Mode = ModeLearning
	learning := buildExam(s, in)
	assert.Contains(t, learning, "단계별 힌트 → 풀이 과정 → 정답")
	assert.NotContains(t, learning, "모범 답안과 채점 포인트")

	s.Mode = ModeDeliverable
	deliverable := buildExam(s, in)
	assert.Contains(t, deliverable, "모범 답안과 채점 포인트")
	assert.NotContains(t, deliverable, "단계별 힌트")
}

func TestBuildExam_QuestionTypeEmphasis(t *testing.T) {
	s := baseSettings()
	out := buildExam(s, ExamInputs{QuestionType: "계산형", WantPracticeSet: true})
	assert.Contains(t, out, "계산형 문제 위주로")

	out = buildExam(s, ExamInputs{QuestionType: "혼합", WantPracticeSet: true})
	assert.Contains(t, out, "서술형과 계산형을 골고루")
}

func TestBuildCoding_FixedBlocksAlwaysPresent(t *testing.T) {
	out := buildCoding(baseSettings(), CodingInputs{})
	assert.Contains(t, out, "### 기본 요청사항")
	assert.Contains(t, out, "step-by-step 구현 계획")
	assert.Contains(t, out, "### 실행 환경 고려사항")
	assert.Contains(t, out, "외부 유료 API는 사용하지 마세요.")
}

func TestBuildCoding_CodeSnippetFenced(t *testing.T) {
	out := buildCoding(baseSettings(), CodingInputs{CurrentCodeSnippet: "print('hi')"})
	assert.Contains(t, out, "```\nprint('hi')\n```")
	assert.Contains(t, out, "**코드 분석 요청:**")
}

func TestBuildCoding_OptionalBlocks(t *testing.T) {
	out := buildCoding(baseSettings(), CodingInputs{WantStepPlan: true, WantRefactor: true})
	assert.Contains(t, out, "### 단계별 계획 요청")
	assert.Contains(t, out, "### 리팩터링 요청")

	bare := buildCoding(baseSettings(), CodingInputs{})
	assert.NotContains(t, bare, "### 단계별 계획 요청")
	assert.NotContains(t, bare, "### 리팩터링 요청")
}

func TestBuildResearch_OutlineVsFullWrite(t *testing.T) {
	s := baseSettings()

	s.OutlineMode = OutlineOnly
	outline := buildResearch(s, ResearchInputs{ResearchTopic: "주제"})
	assert.Contains(t, outline, "### 구조화 요청 (아웃라인 모드)")
	assert.Contains(t, outline, "7. **참고문헌 영역**")

	s.OutlineMode = FullWrite
	full := buildResearch(s, ResearchInputs{ResearchTopic: "주제", LengthTarget: "약 1000자"})
	assert.Contains(t, full, "### 본문 작성 요청 (완전 작성 모드)")
	assert.Contains(t, full, "약 1000자으로 작성해 주세요.")
}

func TestBuildResearch_ReferencesSearchStrategy(t *testing.T) {
	s := baseSettings()
	s.IncludeReferences = true
	out := buildResearch(s, ResearchInputs{ResearchTopic: "주제"})
	assert.Contains(t, out, "### 선행연구 탐색 안내")
	assert.Contains(t, out, "RISS, DBpia, KCI")

	s.IncludeReferences = false
	assert.NotContains(t, buildResearch(s, ResearchInputs{ResearchTopic: "주제"}), "선행연구 탐색 안내")
}

func TestBuildCareerEmail_StagesGated(t *testing.T) {
	s := baseSettings()
	out := buildCareerEmail(s, CareerEmailInputs{
		EmailType:           "professor",
		WantCompanyResearch: true,
		WantOutline:         true,
		WantFullWrite:       true,
	})
	assert.Contains(t, out, "### 기업/연구실 조사 (1단계)")
	assert.Contains(t, out, "### 이메일 구조 설계 (2단계)")
	assert.Contains(t, out, "### 이메일 완전 작성 (3단계)")
	assert.NotContains(t, out, "### 이메일 구조 요청")
}

func TestBuildCareerEmail_NoStageFallback(t *testing.T) {
	s := baseSettings()
	out := buildCareerEmail(s, CareerEmailInputs{EmailType: "professor"})

	require.Contains(t, out, "### 이메일 구조 요청")
	assert.Contains(t, out, "한국어 극존대/공손체를 사용해 주세요.")

	// The fallback structure carries the same numbered items as the
	// outline-stage block.
	for _, item := range []string{
		"1. **제목**", "2. **인사**", "3. **본문**", "4. **서명**",
	} {
		assert.Contains(t, out, item)
	}
	assert.NotContains(t, out, "(2단계)")
}

func TestBuildCareerEmail_CoverLetterFallbackMatchesOutlineContent(t *testing.T) {
	s := baseSettings()
	in := CareerEmailInputs{DocumentType: "cover-letter"}

	fallback := buildCareerEmail(s, in)
	require.Contains(t, fallback, "### 자기소개서 구조 요청")

	in.WantOutline = true
	outline := buildCareerEmail(s, in)
	require.Contains(t, outline, "### 자기소개서 구조 설계 (2단계)")

	// Same list content in both renditions.
	for _, item := range []string{
		"1. **지원동기**: 왜 이 기업/연구실인가?",
		"2. **관련 경험**: 어떤 경험이 있는가?",
		"3. **역량**: 어떤 역량을 보유했는가?",
		"4. **비전**: 입사 후 어떻게 기여하겠는가?",
	} {
		assert.Contains(t, fallback, item)
		assert.Contains(t, outline, item)
	}
}

func TestBuildCareerEmail_CoverLetterSkipsEmailTypeLine(t *testing.T) {
	s := baseSettings()
	out := buildCareerEmail(s, CareerEmailInputs{DocumentType: "cover-letter", WantOutline: true})
	assert.Contains(t, out, "## 작업 지시: 자기소개서/커버레터")
	assert.NotContains(t, out, "### 이메일 유형")
}

func TestEmailLengthPhrase_PassthroughForUnknown(t *testing.T) {
	assert.Equal(t, "5~7문장 내외의 간결한 이메일", EmailLengthPhrase("짧게 (5~7문장)"))
	assert.Equal(t, "약 300자", EmailLengthPhrase("약 300자"))
}

func TestBuildImage_ChecklistAlwaysPresent(t *testing.T) {
	out := buildImage(baseSettings(), ImageInputs{})
	assert.Contains(t, out, "### 프롬프트 구조")
	for _, item := range []string{
		"1. **Main subject and composition**",
		"2. **Style and mood**",
		"3. **Color palette**",
		"4. **Lighting and background**",
		"5. **Resolution / aspect ratio**",
		"6. **Negative prompts**",
	} {
		assert.Contains(t, out, item)
	}
}

func TestBuildImage_OptionalLines(t *testing.T) {
	out := buildImage(baseSettings(), ImageInputs{
		ImageGoal:   "로고",
		Subject:     "스터디 앱",
		DetailLevel: "simple",
	})
	assert.Contains(t, out, "### 이미지 목적\n로고")
	assert.Contains(t, out, "### 주요 피사체\n스터디 앱")
	assert.Contains(t, out, "심플 - 핵심 요소만")
	assert.NotContains(t, out, "### 색상 팔레트")
}

func TestRenderStages_OrdinalsAreCompact(t *testing.T) {
	render := func(name string) func(int) string {
		return func(n int) string { return strings.Repeat("*", n) + name }
	}
	out := renderStages([]stage{
		{false, render("a")},
		{true, render("b")},
		{true, render("c")},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "*b", out[0])
	assert.Equal(t, "**c", out[1])
}
