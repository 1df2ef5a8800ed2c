package usecase

import (
	"context"
	"testing"

	"github.com/spiffcs/ghfind/internal/model"
)

// stubRepository returns pre-built streams and records the arguments.
type stubRepository struct {
	searchQuery  string
	detailsLogin string
	searchCh     chan model.Outcome[[]model.User]
	detailsCh    chan model.Outcome[model.User]
}

func (s *stubRepository) SearchUsers(_ context.Context, query string) <-chan model.Outcome[[]model.User] {
	s.searchQuery = query
	return s.searchCh
}

func (s *stubRepository) GetUserDetails(_ context.Context, login string) <-chan model.Outcome[model.User] {
	s.detailsLogin = login
	return s.detailsCh
}

func TestSearchUsersForwardsUnchanged(t *testing.T) {
	repo := &stubRepository{searchCh: make(chan model.Outcome[[]model.User])}
	uc := NewSearchUsers(repo)

	got := uc.Execute(context.Background(), "torvalds")

	if repo.searchQuery != "torvalds" {
		t.Errorf("query = %q, want %q", repo.searchQuery, "torvalds")
	}
	if got != (<-chan model.Outcome[[]model.User])(repo.searchCh) {
		t.Error("Execute() should return the repository's stream unchanged")
	}
}

func TestGetUserDetailsForwardsUnchanged(t *testing.T) {
	repo := &stubRepository{detailsCh: make(chan model.Outcome[model.User])}
	uc := NewGetUserDetails(repo)

	got := uc.Execute(context.Background(), "torvalds")

	if repo.detailsLogin != "torvalds" {
		t.Errorf("login = %q, want %q", repo.detailsLogin, "torvalds")
	}
	if got != (<-chan model.Outcome[model.User])(repo.detailsCh) {
		t.Error("Execute() should return the repository's stream unchanged")
	}
}
