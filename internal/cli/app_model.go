package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/cli/formatter"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// appModel is the root bubbletea Model for the TUI. It renders the
// category tab bar and manages a view stack above it.
type appModel struct {
	state     *SharedState
	viewStack []View
	status    string
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:  app,
		Form: app.initialState(),
	}

	m := appModel{state: state}
	m.viewStack = []View{newHomeView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.status = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.status = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case statusMsg:
		m.status = msg.text
		return m, nil
	}

	// Forward other messages (cursor blink, async results) to the top view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.status = ""

	// Forms own the keyboard entirely, including esc (handled inside
	// wizardView as cancel).
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil

	case msg.String() == "tab":
		if m.onHome() {
			m.switchTab(1)
			return m, nil
		}

	case msg.String() == "shift+tab":
		if m.onHome() {
			m.switchTab(-1)
			return m, nil
		}

	case len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "6":
		if m.onHome() {
			m.state.Form.ActiveTab = domain.AllTabs[int(msg.String()[0]-'1')]
			return m, nil
		}
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m *appModel) onHome() bool {
	v := m.activeView()
	return v != nil && v.ID() == ViewHome
}

// switchTab moves the active category left or right, wrapping around.
func (m *appModel) switchTab(delta int) {
	tabs := domain.AllTabs
	cur := 0
	for i, t := range tabs {
		if t == m.state.Form.ActiveTab {
			cur = i
			break
		}
	}
	m.state.Form.ActiveTab = tabs[(cur+delta+len(tabs))%len(tabs)]
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderTabBar())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderTabBar() string {
	title := formatter.StylePurple.Render("palette")

	var tabs []string
	for _, t := range domain.AllTabs {
		label := formatter.TabLabel(t)
		if t == m.state.Form.ActiveTab {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}

	bar := title + "  " + strings.Join(tabs, formatter.Dim(" │ "))

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		bar += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return bar + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.status != "" {
		hints = append(hints, formatter.StyleGreen.Render(m.status))
	} else if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		hints = append(hints, formatter.Dim("q: quit"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
