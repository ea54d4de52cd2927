package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

func withConfigFile(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	}
	t.Setenv("PALETTE_CONFIG", path)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	withConfigFile(t, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	withConfigFile(t, "mode: learning\nreport_tone: casual\nself_check: false\n")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "learning", cfg.Mode)
	assert.Equal(t, "casual", cfg.ReportTone)
	require.NotNil(t, cfg.SelfCheck)
	assert.False(t, *cfg.SelfCheck)
	assert.Nil(t, cfg.IncludeSources)
}

func TestLoad_InvalidYAML(t *testing.T) {
	withConfigFile(t, "mode: [unclosed")

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("PALETTE_CONFIG", filepath.Join(t.TempDir(), "nested", "config.yaml"))

	off := false
	require.NoError(t, Save(&Config{Mode: "task", SelfCheck: &off}))

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "task", cfg.Mode)
	require.NotNil(t, cfg.SelfCheck)
	assert.False(t, *cfg.SelfCheck)
}

func TestApply_OverlaysOntoDefaults(t *testing.T) {
	state := domain.DefaultFormState()
	on := true
	Apply(&Config{
		Mode:           "learning",
		ResultFormat:   "outline",
		TargetModel:    "gemini",
		ReportTone:     "presentation",
		IncludeSources: &on,
	}, state)

	assert.Equal(t, domain.ModeLearning, state.Common.Mode)
	assert.Equal(t, domain.FormatOutline, state.Common.ResultFormat)
	assert.Equal(t, domain.ModelGemini, state.Common.TargetModel)
	assert.Equal(t, domain.TonePresentation, state.Report.Tone)
	assert.True(t, state.Common.IncludeSources)
	// Untouched fields keep their defaults.
	assert.True(t, state.Common.IncludeSelfCheck)
}

func TestApply_IgnoresUnknownValues(t *testing.T) {
	state := domain.DefaultFormState()
	Apply(&Config{Mode: "warp-speed", ReportTone: "shouty"}, state)

	assert.Equal(t, domain.ModeTask, state.Common.Mode)
	assert.Equal(t, domain.ToneAcademic, state.Report.Tone)
}

func TestApply_NilConfigIsNoop(t *testing.T) {
	state := domain.DefaultFormState()
	Apply(nil, state)
	assert.Equal(t, domain.DefaultFormState(), state)
}
