package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

func TestTabLabel(t *testing.T) {
	tests := []struct {
		tab  domain.TabType
		want string
	}{
		{domain.TabReport, "레포트·에세이"},
		{domain.TabExam, "시험 대비"},
		{domain.TabCoding, "코딩"},
		{domain.TabResearch, "연구·논문"},
		{domain.TabCareer, "커리어·이메일"},
		{domain.TabImage, "이미지 생성"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TabLabel(tt.tab))
	}
}

func TestTabLabel_UnknownFallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "mystery", TabLabel(domain.TabType("mystery")))
}

func TestHeader_UnderlineMatchesDisplayWidth(t *testing.T) {
	out := Header("Saved Prompts")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	// The underline matches the rendered width, which matters for wide
	// CJK glyphs.
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	got := Truncate("a very long title that exceeds the limit", 10)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, lipgloss.Width(got), 10)

	// Wide glyphs count by display cell, not by rune.
	wide := Truncate("한국어제목이아주깁니다", 8)
	assert.LessOrEqual(t, lipgloss.Width(wide), 8)
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "Just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-30 * time.Hour), "Yesterday"},
		{now.Add(-10 * 24 * time.Hour), "Aug 21, 2026"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanTimestampFrom(tt.at, now))
	}
}
