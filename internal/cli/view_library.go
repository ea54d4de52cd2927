package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/cli/formatter"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// libraryReloadedMsg carries a fresh snapshot of the saved-prompt list.
type libraryReloadedMsg struct {
	prompts []domain.SavedPrompt
}

// libraryView lists saved prompts; entries can be opened in the preview
// or deleted in place.
type libraryView struct {
	state   *SharedState
	prompts []domain.SavedPrompt
	cursor  int
}

func newLibraryView(state *SharedState) *libraryView {
	return &libraryView{
		state:   state,
		prompts: state.App.Library.List(context.Background()),
	}
}

func (v *libraryView) ID() ViewID    { return ViewLibrary }
func (v *libraryView) Title() string { return "저장된 프롬프트" }

func (v *libraryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *libraryView) Init() tea.Cmd { return nil }

func (v *libraryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryReloadedMsg:
		v.prompts = msg.prompts
		if v.cursor >= len(v.prompts) {
			v.cursor = len(v.prompts) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.prompts)-1 {
				v.cursor++
			}
		case "enter":
			if p := v.selected(); p != nil {
				v.state.LastPrompt = p.Prompt
				v.state.LastPromptTab = p.TabType
				return v, pushView(newPreviewView(v.state))
			}
		case "x":
			if p := v.selected(); p != nil {
				return v, v.deleteCmd(p.ID)
			}
		}
	}

	return v, nil
}

func (v *libraryView) selected() *domain.SavedPrompt {
	if v.cursor < 0 || v.cursor >= len(v.prompts) {
		return nil
	}
	return &v.prompts[v.cursor]
}

func (v *libraryView) deleteCmd(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Library.Delete(context.Background(), id); err != nil {
			return statusMsg{text: fmt.Sprintf("삭제 실패: %v", err)}
		}
		return libraryReloadedMsg{prompts: app.Library.List(context.Background())}
	}
}

func (v *libraryView) View() string {
	if len(v.prompts) == 0 {
		return "\n  " + formatter.Dim("저장된 프롬프트가 없습니다.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range v.prompts {
		marker := "  "
		title := formatter.Truncate(p.Title, 36)
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("> ")
			title = formatter.Bold(title)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			marker,
			formatter.StyleBlue.Render(formatter.TabLabel(p.TabType)),
			title,
			formatter.Dim(formatter.HumanTimestamp(p.CreatedTime())),
		))
		if i == v.cursor && p.Notes != "" {
			b.WriteString("    " + formatter.Dim(formatter.Truncate(p.Notes, 60)) + "\n")
		}
	}
	return b.String()
}
