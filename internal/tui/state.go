package tui

import "github.com/spiffcs/ghfind/internal/model"

// Phase identifies which variant of a UIState is active.
type Phase int

const (
	// PhaseIdle is the initial state before any search is issued.
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// UIState is the single source of truth the screen renders from. It is a
// flat four-variant union: Users and Selected are meaningful only in
// PhaseSuccess, Message only in PhaseError. States are replaced wholesale
// on every transition, never mutated in place.
type UIState struct {
	Phase    Phase
	Users    []model.User
	Selected *model.User
	Message  string
}

// Idle returns the initial state.
func Idle() UIState {
	return UIState{Phase: PhaseIdle}
}

// Loading returns the in-flight state.
func Loading() UIState {
	return UIState{Phase: PhaseLoading}
}

// Success returns a state carrying the fetched user list and, after a
// details fetch, the selected user.
func Success(users []model.User, selected *model.User) UIState {
	return UIState{Phase: PhaseSuccess, Users: users, Selected: selected}
}

// Error returns a state carrying a user-visible message.
func Error(message string) UIState {
	return UIState{Phase: PhaseError, Message: message}
}
