package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

func runGenerate(t *testing.T, app *App, args ...string) error {
	t.Helper()
	cmd := newGenerateCmd(app)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	return cmd.Execute()
}

func TestGenerateCmd_RejectsUnknownCategory(t *testing.T) {
	err := runGenerate(t, testApp(), "poetry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestGenerateCmd_SaveStoresGeneratedPrompt(t *testing.T) {
	lib := &stubLibrary{}
	app := testApp()
	app.Library = lib

	err := runGenerate(t, app, "report",
		"--topic", "AI ethics",
		"--save", "윤리학 레포트",
		"--notes", "중간 과제")
	require.NoError(t, err)

	require.Len(t, lib.prompts, 1)
	saved := lib.prompts[0]
	assert.Equal(t, "윤리학 레포트", saved.Title)
	assert.Equal(t, "중간 과제", saved.Notes)
	assert.Equal(t, domain.TabReport, saved.TabType)
	assert.Contains(t, saved.Prompt, "AI ethics")
}

func TestGenerateCmd_SaveRequiresValidTitle(t *testing.T) {
	lib := &stubLibrary{}
	app := testApp()
	app.Library = lib

	err := runGenerate(t, app, "report", "--save", "   ")
	require.Error(t, err)
	assert.Empty(t, lib.prompts)
}

func TestGenerateCmd_StageFlagsReplaceDefaults(t *testing.T) {
	lib := &stubLibrary{}
	app := testApp()
	app.Library = lib

	// The default stage selection is outline only; naming any stage flag
	// replaces the whole selection.
	err := runGenerate(t, app, "report",
		"--research", "--full-write",
		"--save", "단계 교체")
	require.NoError(t, err)

	require.Len(t, lib.prompts, 1)
	prompt := lib.prompts[0].Prompt
	assert.Contains(t, prompt, "자료 조사")
	assert.Contains(t, prompt, "본문 초안 작성")
	assert.NotContains(t, prompt, "아웃라인 구성")
}

func TestGenerateCmd_CommonFlagsFlowIntoPrompt(t *testing.T) {
	lib := &stubLibrary{}
	app := testApp()
	app.Library = lib

	err := runGenerate(t, app, "exam",
		"--scope", "미시경제학 1~5장",
		"--subject", "미시경제학",
		"--mode", "learning",
		"--save", "시험 대비")
	require.NoError(t, err)

	require.Len(t, lib.prompts, 1)
	prompt := lib.prompts[0].Prompt
	assert.Equal(t, domain.TabExam, lib.prompts[0].TabType)
	assert.Contains(t, prompt, "미시경제학 1~5장")
	assert.Contains(t, prompt, "미시경제학")
}

func TestGenerateCmd_WordsFlagOverridesPreset(t *testing.T) {
	lib := &stubLibrary{}
	app := testApp()
	app.Library = lib

	err := runGenerate(t, app, "report",
		"--words", "2500자 내외",
		"--save", "분량 지정")
	require.NoError(t, err)

	require.Len(t, lib.prompts, 1)
	assert.Contains(t, lib.prompts[0].Prompt, "2500자 내외")
}

func TestGenerateCmd_CareerDocTypeFlag(t *testing.T) {
	lib := &stubLibrary{}
	app := testApp()
	app.Library = lib

	err := runGenerate(t, app, "career",
		"--doc-type", "cover-letter",
		"--message", "백엔드 직무에 지원합니다",
		"--save", "자소서")
	require.NoError(t, err)

	require.Len(t, lib.prompts, 1)
	prompt := lib.prompts[0].Prompt
	assert.Equal(t, domain.TabCareer, lib.prompts[0].TabType)
	assert.Contains(t, prompt, "자기소개서")
	assert.Contains(t, prompt, "백엔드 직무에 지원합니다")
}
