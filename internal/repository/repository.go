// Package repository orchestrates the fetch-map-cache-emit pipeline: issue
// a network call, map the wire records to domain models, persist them to
// the local cache best-effort, and emit a loading/terminal outcome stream.
package repository

import (
	"context"
	"errors"

	gh "github.com/google/go-github/v57/github"

	"github.com/spiffcs/ghfind/internal/log"
	"github.com/spiffcs/ghfind/internal/mapping"
	"github.com/spiffcs/ghfind/internal/model"
	"github.com/spiffcs/ghfind/internal/store"
	"github.com/spiffcs/ghfind/internal/usecase"
)

// ErrEmptyUser is returned when a details fetch succeeds but carries no
// body. A missing user has no sensible success value.
var ErrEmptyUser = errors.New("user not found or response was empty")

// Remote is the subset of the GitHub client the repository consumes.
type Remote interface {
	SearchUsers(ctx context.Context, query string) (*gh.UsersSearchResult, error)
	GetUser(ctx context.Context, login string) (*gh.User, error)
}

// CacheStore is the write-only view of the local cache. The repository
// never reads it back; cached records are served by the cache commands.
type CacheStore interface {
	UpsertAll(ctx context.Context, records []store.UserRecord) error
}

// UserRepository composes the remote data source, the data mapper, and the
// local cache store into the two domain operations.
type UserRepository struct {
	remote Remote
	cache  CacheStore
}

var _ usecase.Repository = (*UserRepository)(nil)

// New creates a UserRepository. cache may be nil, in which case search
// results are simply not persisted.
func New(remote Remote, cache CacheStore) *UserRepository {
	return &UserRepository{remote: remote, cache: cache}
}

// SearchUsers fetches users matching query and emits Loading followed by
// exactly one terminal outcome. A successful response with no body yields
// an empty success, not an error. Raw wire records are upserted into the
// cache; a failed write is logged and otherwise ignored.
func (r *UserRepository) SearchUsers(ctx context.Context, query string) <-chan model.Outcome[[]model.User] {
	out := make(chan model.Outcome[[]model.User], 2)

	go func() {
		defer close(out)
		out <- model.Loading[[]model.User]()

		result, err := r.remote.SearchUsers(ctx, query)
		if err != nil {
			out <- model.Failure[[]model.User](err)
			return
		}
		if result == nil {
			out <- model.Success([]model.User{})
			return
		}

		users := mapping.Users(result.Users)
		r.cacheUsers(ctx, result.Users)
		out <- model.Success(users)
	}()

	return out
}

// GetUserDetails fetches one user's full profile and emits Loading
// followed by exactly one terminal outcome. A successful response with an
// empty body is an error here, unlike search.
func (r *UserRepository) GetUserDetails(ctx context.Context, login string) <-chan model.Outcome[model.User] {
	out := make(chan model.Outcome[model.User], 2)

	go func() {
		defer close(out)
		out <- model.Loading[model.User]()

		user, err := r.remote.GetUser(ctx, login)
		if err != nil {
			out <- model.Failure[model.User](err)
			return
		}
		if user == nil {
			out <- model.Failure[model.User](ErrEmptyUser)
			return
		}

		out <- model.Success(mapping.User(user))
	}()

	return out
}

// cacheUsers writes the raw wire records through to the cache. Best-effort:
// the search result has already been produced, so failures are not surfaced.
func (r *UserRepository) cacheUsers(ctx context.Context, ws []*gh.User) {
	if r.cache == nil || len(ws) == 0 {
		return
	}
	if err := r.cache.UpsertAll(ctx, mapping.Records(ws)); err != nil {
		log.Debug("cache write failed", "error", err)
	}
}
