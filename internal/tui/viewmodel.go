package tui

import (
	"context"
	"sync"

	"github.com/spiffcs/ghfind/internal/model"
	"github.com/spiffcs/ghfind/internal/usecase"
)

// stateBuffer bounds the state channel. The screen only ever renders the
// latest value, so when the buffer fills the oldest pending state is
// dropped rather than blocking a producer.
const stateBuffer = 16

// ViewModel owns the UI state. It is the sole writer: commands subscribe
// to a use case's outcome stream and publish each mapped value as the new
// current state, last-value-wins. Overlapping invocations are not
// serialized, so a slow earlier response can overwrite a faster later one;
// callers that care should debounce upstream.
type ViewModel struct {
	searchUsers    *usecase.SearchUsers
	getUserDetails *usecase.GetUserDetails

	mu      sync.Mutex
	current UIState
	states  chan UIState
}

// NewViewModel creates a view model in the Idle state.
func NewViewModel(search *usecase.SearchUsers, details *usecase.GetUserDetails) *ViewModel {
	return &ViewModel{
		searchUsers:    search,
		getUserDetails: details,
		current:        Idle(),
		states:         make(chan UIState, stateBuffer),
	}
}

// States returns the channel of published states. The bubbletea model is
// the single reader.
func (vm *ViewModel) States() <-chan UIState {
	return vm.states
}

// Current returns the most recently published state.
func (vm *ViewModel) Current() UIState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.current
}

// SearchUsers issues a search and publishes each resulting state. The
// query is forwarded uninterpreted.
func (vm *ViewModel) SearchUsers(ctx context.Context, query string) {
	go func() {
		for o := range vm.searchUsers.Execute(ctx, query) {
			vm.publish(searchState(o))
		}
	}()
}

// LoadUserDetails fetches one user's profile. The current user list is
// captured first so a successful details fetch re-presents it alongside
// the selected user; an error discards it.
func (vm *ViewModel) LoadUserDetails(ctx context.Context, login string) {
	captured := vm.Current().Users

	vm.publish(Loading())

	go func() {
		for o := range vm.getUserDetails.Execute(ctx, login) {
			vm.publish(detailsState(o, captured))
		}
	}()
}

// publish replaces the current state and pushes it to the channel,
// dropping the oldest buffered state if the reader has fallen behind.
func (vm *ViewModel) publish(s UIState) {
	vm.mu.Lock()
	vm.current = s
	vm.mu.Unlock()

	for {
		select {
		case vm.states <- s:
			return
		default:
			select {
			case <-vm.states:
			default:
			}
		}
	}
}

// searchState maps a search outcome to a UI state.
func searchState(o model.Outcome[[]model.User]) UIState {
	switch o.State {
	case model.StateSuccess:
		return Success(o.Value, nil)
	case model.StateError:
		return Error(errorMessage(o.Err))
	default:
		return Loading()
	}
}

// detailsState maps a details outcome to a UI state, carrying the captured
// user list forward on success.
func detailsState(o model.Outcome[model.User], users []model.User) UIState {
	switch o.State {
	case model.StateSuccess:
		selected := o.Value
		return Success(users, &selected)
	case model.StateError:
		return Error(errorMessage(o.Err))
	default:
		return Loading()
	}
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
