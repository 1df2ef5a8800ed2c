// Package usecase exposes the domain operations to the presentation layer.
// Each use case is a single-method façade over the Repository so the UI
// depends on this package rather than on the data layer directly.
package usecase

import (
	"context"

	"github.com/spiffcs/ghfind/internal/model"
)

// Repository is the domain-side contract for fetching users. Each
// operation returns a finite outcome stream: one Loading value followed by
// exactly one Success or Error, after which the channel is closed.
type Repository interface {
	SearchUsers(ctx context.Context, query string) <-chan model.Outcome[[]model.User]
	GetUserDetails(ctx context.Context, login string) <-chan model.Outcome[model.User]
}

// SearchUsers searches GitHub users by login or name.
type SearchUsers struct {
	repo Repository
}

// NewSearchUsers creates the search use case.
func NewSearchUsers(repo Repository) *SearchUsers {
	return &SearchUsers{repo: repo}
}

// Execute forwards the query to the repository unchanged.
func (uc *SearchUsers) Execute(ctx context.Context, query string) <-chan model.Outcome[[]model.User] {
	return uc.repo.SearchUsers(ctx, query)
}

// GetUserDetails fetches a single user's full profile.
type GetUserDetails struct {
	repo Repository
}

// NewGetUserDetails creates the details use case.
func NewGetUserDetails(repo Repository) *GetUserDetails {
	return &GetUserDetails{repo: repo}
}

// Execute forwards the login to the repository unchanged.
func (uc *GetUserDetails) Execute(ctx context.Context, login string) <-chan model.Outcome[model.User] {
	return uc.repo.GetUserDetails(ctx, login)
}
