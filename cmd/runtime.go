package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spiffcs/ghfind/config"
	"github.com/spiffcs/ghfind/internal/github"
	"github.com/spiffcs/ghfind/internal/log"
	"github.com/spiffcs/ghfind/internal/repository"
	"github.com/spiffcs/ghfind/internal/store"
	"github.com/spiffcs/ghfind/internal/usecase"
)

// runtime bundles the wired application layers for a single command run.
type runtime struct {
	cfg            *config.Config
	store          *store.Store
	searchUsers    *usecase.SearchUsers
	getUserDetails *usecase.GetUserDetails
}

// newRuntime loads config, authenticates, opens the cache, and wires the
// data and domain layers. The cache is best-effort: if it cannot be opened
// the repository runs without one.
func newRuntime(ctx context.Context, opts *Options) (*runtime, error) {
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	token := cfg.GetGitHubToken()
	if token == "" {
		return nil, fmt.Errorf("GitHub token not configured. Set the GITHUB_TOKEN environment variable")
	}

	var clientOpts []github.Option
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, github.WithBaseURL(cfg.BaseURL))
	}
	client, err := github.NewClient(ctx, token, clientOpts...)
	if err != nil {
		return nil, err
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Warn("failed to open user cache, continuing without it", "error", err)
		st = nil
	}

	repo := repository.New(client, cacheOrNil(st))

	return &runtime{
		cfg:            cfg,
		store:          st,
		searchUsers:    usecase.NewSearchUsers(repo),
		getUserDetails: usecase.NewGetUserDetails(repo),
	}, nil
}

// close releases the cache connection if one was opened.
func (rt *runtime) close() {
	if rt.store != nil {
		rt.store.Close()
	}
}

// format resolves the output format from the flag, falling back to config.
func (rt *runtime) format(opts *Options) string {
	if opts.Format != "" {
		return opts.Format
	}
	return rt.cfg.DefaultFormat
}

// openStore opens the cache database at the configured or default path.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DatabasePath
	if path == "" {
		path = store.DefaultPath()
	}
	return store.Open(path)
}

// cacheOrNil converts a possibly-nil *store.Store into the repository's
// cache interface without producing a non-nil interface around a nil pointer.
func cacheOrNil(st *store.Store) repository.CacheStore {
	if st == nil {
		return nil
	}
	return st
}
