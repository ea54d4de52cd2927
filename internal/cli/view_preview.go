package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// previewView shows the generated prompt in a scrollable viewport with
// copy and save actions.
type previewView struct {
	state *SharedState
	vp    viewport.Model
	ready bool
}

func newPreviewView(state *SharedState) *previewView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.SetContent(state.LastPrompt)
	return &previewView{
		state: state,
		vp:    vp,
		ready: state.Width > 0,
	}
}

func (v *previewView) ID() ViewID    { return ViewPreview }
func (v *previewView) Title() string { return "미리보기" }

func (v *previewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *previewView) Init() tea.Cmd { return nil }

func (v *previewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return v, v.copyCmd()
		case "s":
			return v, v.saveCmd()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *previewView) copyCmd() tea.Cmd {
	app := v.state.App
	text := v.state.LastPrompt
	return func() tea.Msg {
		if err := app.Clipboard.Write(text); err != nil {
			return statusMsg{text: fmt.Sprintf("클립보드 사용 불가: %v", err)}
		}
		return statusMsg{text: "클립보드에 복사했습니다."}
	}
}

func (v *previewView) saveCmd() tea.Cmd {
	var title, notes string
	form := saveForm(&title, &notes)

	state := v.state
	done := func() tea.Cmd {
		return func() tea.Msg {
			p, err := state.App.Library.Save(context.Background(), title, notes, state.LastPromptTab, state.LastPrompt)
			if err != nil {
				return statusMsg{text: fmt.Sprintf("저장 실패: %v", err)}
			}
			return statusMsg{text: fmt.Sprintf("%q 저장 완료", p.Title)}
		}
	}

	return startWizardCmd(state, "프롬프트 저장", form, done)
}

func (v *previewView) View() string {
	if !v.ready {
		return v.state.LastPrompt
	}
	return v.vp.View()
}
