package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/cli/formatter"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/generation"
)

// homeView is the landing view: a summary of the active category's
// inputs plus the shared settings, with shortcuts to edit each group.
type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit inputs")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "common settings")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "stages")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "attachment")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g/enter", "generate")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "library")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "e":
		form := tabForm(v.state, v.state.Form.ActiveTab)
		title := formatter.TabLabel(v.state.Form.ActiveTab)
		return v, startWizardCmd(v.state, title, form, nil)

	case "c":
		form := commonSettingsForm(&v.state.Form.Common)
		return v, startWizardCmd(v.state, "공통 설정", form, nil)

	case "t":
		form := stageForm(&v.state.Form.Stages)
		return v, startWizardCmd(v.state, "작업 단계", form, nil)

	case "a":
		form := attachmentForm(&v.state.Form.Attachment)
		return v, startWizardCmd(v.state, "첨부 파일", form, nil)

	case "g", "enter":
		v.state.LastPrompt = generation.Generate(v.state.Form)
		v.state.LastPromptTab = v.state.Form.ActiveTab
		return v, pushView(newPreviewView(v.state))

	case "l":
		return v, pushView(newLibraryView(v.state))
	}

	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	f := v.state.Form

	b.WriteString("\n")
	b.WriteString(v.renderSummary())
	b.WriteString("\n")

	stages := activeStageLabels(f.Stages)
	b.WriteString(fmt.Sprintf("  %s %s\n",
		formatter.Dim("작업 단계:"),
		strings.Join(stages, formatter.Dim(" → "))))

	if f.Attachment.HasAttachment && f.Attachment.Description != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.Dim("첨부 파일:"),
			formatter.Truncate(f.Attachment.Description, 50)))
	}

	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim("g 를 누르면 현재 입력으로 프롬프트를 생성합니다."))
	b.WriteString("\n")

	return b.String()
}

// renderSummary lists the filled-in fields for the active category.
func (v *homeView) renderSummary() string {
	f := v.state.Form
	rows := summaryRows(f)

	var b strings.Builder
	b.WriteString("  " + formatter.Bold(formatter.TabLabel(f.ActiveTab)) + "\n\n")
	for _, r := range rows {
		val := r.value
		if strings.TrimSpace(val) == "" {
			val = formatter.Dim("(비어 있음)")
		} else {
			val = formatter.Truncate(strings.ReplaceAll(val, "\n", " "), 50)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim(r.label+":"), val))
	}
	return b.String()
}

type summaryRow struct {
	label string
	value string
}

func summaryRows(f *domain.FormState) []summaryRow {
	switch f.ActiveTab {
	case domain.TabReport:
		return []summaryRow{
			{"과제 설명", f.Report.TaskDescription},
			{"주제", f.Report.Topic},
			{"개요 구조", f.Report.OutlineStructure},
			{"분량", f.Report.WordCountPreset},
			{"문체", string(f.Report.Tone)},
		}
	case domain.TabExam:
		return []summaryRow{
			{"시험 범위", f.Exam.ExamScope},
			{"시험 유형", f.Exam.ExamType},
			{"요약본 형태", f.Exam.SummaryType},
			{"분량", f.Exam.WordCountPreset},
		}
	case domain.TabCoding:
		return []summaryRow{
			{"언어", f.Coding.Language},
			{"구현할 기능", f.Coding.FeatureDescription},
			{"목표물", f.Coding.Goal},
			{"작성 방식", f.Coding.WriteMode},
		}
	case domain.TabResearch:
		return []summaryRow{
			{"연구 주제", f.Research.ResearchTopic},
			{"현재 아이디어", f.Research.CurrentIdea},
			{"개요 구조", f.Research.OutlineStructure},
			{"분량", f.Research.WordCountPreset},
		}
	case domain.TabCareer:
		return []summaryRow{
			{"문서 종류", string(f.Career.DocumentType)},
			{"받는 사람", f.Career.RecipientInfo},
			{"핵심 메시지", f.Career.CoreMessage},
		}
	case domain.TabImage:
		return []summaryRow{
			{"이미지 종류", f.Image.ImageType},
			{"서비스 이름", f.Image.ServiceName},
			{"스타일 키워드", f.Image.StyleKeywords},
			{"사용처", f.Image.Platform},
		}
	}
	return nil
}

// activeStageLabels renders the enabled stages in pipeline order, or a
// dim placeholder when none are on.
func activeStageLabels(s domain.StageSelection) []string {
	var out []string
	if s.Research {
		out = append(out, "자료 조사")
	}
	if s.Outline {
		out = append(out, "개요 작성")
	}
	if s.FullWrite {
		out = append(out, "전체 작성")
	}
	if len(out) == 0 {
		out = []string{formatter.Dim("(선택 안 함)")}
	}
	return out
}
