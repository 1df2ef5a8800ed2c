package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spiffcs/ghfind/internal/model"
	"github.com/spiffcs/ghfind/internal/usecase"
)

func newTestModel(repo usecase.Repository) Model {
	vm := NewViewModel(usecase.NewSearchUsers(repo), usecase.NewGetUserDetails(repo))
	return NewModel(context.Background(), vm)
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(&scriptedRepository{})

	view := m.View()
	if !strings.Contains(view, "Start typing") {
		t.Errorf("idle view missing hint:\n%s", view)
	}
}

func TestStateMsgUpdatesView(t *testing.T) {
	m := newTestModel(&scriptedRepository{})

	updated, _ := m.Update(stateMsg(Success([]model.User{
		{ID: 1024025, Login: "torvalds", Name: "Linus Torvalds"},
	}, nil)))
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "torvalds") {
		t.Errorf("success view missing user login:\n%s", view)
	}
	if !strings.Contains(view, "Linus Torvalds") {
		t.Errorf("success view missing user name:\n%s", view)
	}
}

func TestErrorStateRendered(t *testing.T) {
	m := newTestModel(&scriptedRepository{})

	updated, _ := m.Update(stateMsg(Error("Network request failed with code: 503")))
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "Network request failed with code: 503") {
		t.Errorf("error view missing message:\n%s", view)
	}
}

func TestEmptyResultsRendered(t *testing.T) {
	m := newTestModel(&scriptedRepository{})

	updated, _ := m.Update(stateMsg(Success([]model.User{}, nil)))
	m = updated.(Model)

	if view := m.View(); !strings.Contains(view, "No users found.") {
		t.Errorf("empty success view missing placeholder:\n%s", view)
	}
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(&scriptedRepository{})
	updated, _ := m.Update(stateMsg(Success([]model.User{
		{Login: "first"},
		{Login: "second"},
	}, nil)))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	// Cursor does not run past the end of the list.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want clamped at 1", m.cursor)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}
}

func TestCursorClampedOnShrinkingResults(t *testing.T) {
	m := newTestModel(&scriptedRepository{})
	updated, _ := m.Update(stateMsg(Success([]model.User{
		{Login: "a"}, {Login: "b"}, {Login: "c"},
	}, nil)))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)

	updated, _ = m.Update(stateMsg(Success([]model.User{{Login: "a"}}, nil)))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after results shrank, want 0", m.cursor)
	}
}

func TestEnterOpensDetailScreen(t *testing.T) {
	repo := &scriptedRepository{
		detailsOutcomes: []model.Outcome[model.User]{
			model.Loading[model.User](),
			model.Success(model.User{Login: "torvalds", Name: "Linus Torvalds", Followers: 200000, PublicRepos: 7}),
		},
	}
	m := newTestModel(repo)
	updated, _ := m.Update(stateMsg(Success([]model.User{{Login: "torvalds"}}, nil)))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.screen != screenDetail {
		t.Fatalf("screen = %d after enter, want detail", m.screen)
	}

	selected := model.User{Login: "torvalds", Name: "Linus Torvalds", Followers: 200000, PublicRepos: 7}
	updated, _ = m.Update(stateMsg(Success([]model.User{{Login: "torvalds"}}, &selected)))
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Linus Torvalds", "200000", "Followers", "Public repos"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q:\n%s", want, view)
		}
	}
}

func TestEscReturnsToSearch(t *testing.T) {
	m := newTestModel(&scriptedRepository{})
	m.screen = screenDetail

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.screen != screenSearch {
		t.Errorf("screen = %d after esc, want search", m.screen)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(&scriptedRepository{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should produce a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("cmd() = %v, want tea.QuitMsg", msg)
	}
}

func TestTypingTriggersSearch(t *testing.T) {
	repo := &scriptedRepository{
		searchOutcomes: []model.Outcome[[]model.User]{
			model.Loading[[]model.User](),
			model.Success([]model.User{{Login: "torvalds"}}),
		},
	}
	m := newTestModel(repo)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = updated.(Model)

	if m.input.Value() != "t" {
		t.Errorf("input value = %q, want %q", m.input.Value(), "t")
	}

	// The view model publishes loading then success for the keystroke.
	got := awaitPhase(t, m.vm, PhaseSuccess)
	if len(got.Users) != 1 {
		t.Errorf("Users = %+v", got.Users)
	}
}
