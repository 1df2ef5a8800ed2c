package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// screen identifies which of the two destinations is rendered.
type screen int

const (
	screenSearch screen = iota
	screenDetail
)

// stateMsg delivers a newly published UI state to the bubbletea loop.
type stateMsg UIState

// Model is the Bubble Tea model for the interactive search UI. It renders
// whatever UIState the view model last published and translates key input
// into view model commands.
type Model struct {
	ctx     context.Context
	vm      *ViewModel
	input   textinput.Model
	spinner spinner.Model

	state        UIState
	screen       screen
	cursor       int
	windowWidth  int
	windowHeight int
	quitting     bool
}

// NewModel creates the model in the Idle state with the input focused.
func NewModel(ctx context.Context, vm *ViewModel) Model {
	ti := textinput.New()
	ti.Placeholder = "Search GitHub users"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 100

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		ctx:         ctx,
		vm:          vm,
		input:       ti,
		spinner:     s,
		state:       Idle(),
		screen:      screenSearch,
		windowWidth: 80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForState(m.vm.States()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stateMsg:
		m.state = UIState(msg)
		if last := len(m.state.Users) - 1; m.cursor > last {
			if last < 0 {
				last = 0
			}
			m.cursor = last
		}
		return m, waitForState(m.vm.States())
	}

	return m, nil
}

// handleKey processes keyboard input for the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenDetail {
		switch msg.String() {
		case "q", "esc", "backspace":
			m.screen = screenSearch
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.state.Users)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.state.Phase == PhaseSuccess && m.cursor < len(m.state.Users) {
			m.vm.LoadUserDetails(m.ctx, m.state.Users[m.cursor].Login)
			m.screen = screenDetail
		}
		return m, nil
	}

	// Everything else edits the query. A changed value triggers a new
	// search immediately; the query is not validated here.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.cursor = 0
		m.vm.SearchUsers(m.ctx, after)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenDetail {
		return m.detailView()
	}
	return m.searchView()
}

// searchView renders the search list screen.
func (m Model) searchView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GitHub user search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.state.Phase {
	case PhaseIdle:
		b.WriteString(hintStyle.Render("Start typing to search for GitHub users."))
		b.WriteString("\n")

	case PhaseLoading:
		b.WriteString(fmt.Sprintf("%s Searching...\n", m.spinner.View()))

	case PhaseError:
		b.WriteString(errorStyle.Render("Error: " + m.state.Message))
		b.WriteString("\n")

	case PhaseSuccess:
		if len(m.state.Users) == 0 {
			b.WriteString(hintStyle.Render("No users found."))
			b.WriteString("\n")
			break
		}
		for i, u := range m.state.Users {
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			line := cursor + loginStyle.Render(u.Login)
			if u.Name != "" {
				line += " " + nameStyle.Render(u.Name)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString(footerStyle.Render("enter: details • up/down: move • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// detailView renders the user detail screen.
func (m Model) detailView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("User details"))
	b.WriteString("\n\n")

	switch m.state.Phase {
	case PhaseLoading:
		b.WriteString(fmt.Sprintf("%s Loading profile...\n", m.spinner.View()))

	case PhaseError:
		b.WriteString(errorStyle.Render("Error: " + m.state.Message))
		b.WriteString("\n")

	case PhaseSuccess:
		u := m.state.Selected
		if u == nil {
			b.WriteString(hintStyle.Render("No user selected."))
			b.WriteString("\n")
			break
		}
		rows := []struct {
			label string
			value string
		}{
			{"Login", u.Login},
			{"Name", u.Name},
			{"Followers", fmt.Sprintf("%d", u.Followers)},
			{"Public repos", fmt.Sprintf("%d", u.PublicRepos)},
			{"Avatar", u.AvatarURL},
			{"Profile", u.URL()},
		}
		for _, row := range rows {
			b.WriteString(labelStyle.Render(row.label))
			b.WriteString(valueStyle.Render(row.value))
			b.WriteString("\n")
		}

	default:
		b.WriteString(hintStyle.Render("No user selected."))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("esc: back to results • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

// waitForState creates a command that waits for the next published state.
func waitForState(states <-chan UIState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg(s)
	}
}
