// Package mapping converts between the wire representation returned by the
// GitHub API, the storage representation persisted in the cache, and the
// domain model. All conversions are pure field renames.
package mapping

import (
	gh "github.com/google/go-github/v57/github"

	"github.com/spiffcs/ghfind/internal/model"
	"github.com/spiffcs/ghfind/internal/store"
)

// User converts a wire record to the domain model.
func User(w *gh.User) model.User {
	return model.User{
		ID:          w.GetID(),
		Login:       w.GetLogin(),
		AvatarURL:   w.GetAvatarURL(),
		Name:        w.GetName(),
		Followers:   w.GetFollowers(),
		PublicRepos: w.GetPublicRepos(),
	}
}

// Users converts a slice of wire records. The result is never nil so an
// empty response maps to an empty, not absent, user list.
func Users(ws []*gh.User) []model.User {
	users := make([]model.User, 0, len(ws))
	for _, w := range ws {
		if w == nil {
			continue
		}
		users = append(users, User(w))
	}
	return users
}

// Record converts a wire record to its storage representation.
func Record(w *gh.User) store.UserRecord {
	return store.UserRecord{
		ID:          w.GetID(),
		Login:       w.GetLogin(),
		AvatarURL:   w.GetAvatarURL(),
		Name:        w.GetName(),
		Followers:   w.GetFollowers(),
		PublicRepos: w.GetPublicRepos(),
	}
}

// Records converts a slice of wire records to storage records.
func Records(ws []*gh.User) []store.UserRecord {
	records := make([]store.UserRecord, 0, len(ws))
	for _, w := range ws {
		if w == nil {
			continue
		}
		records = append(records, Record(w))
	}
	return records
}

// RecordUser converts a cached storage record to the domain model.
func RecordUser(r store.UserRecord) model.User {
	return model.User{
		ID:          r.ID,
		Login:       r.Login,
		AvatarURL:   r.AvatarURL,
		Name:        r.Name,
		Followers:   r.Followers,
		PublicRepos: r.PublicRepos,
	}
}

// RecordUsers converts cached storage records to domain users.
func RecordUsers(rs []store.UserRecord) []model.User {
	users := make([]model.User, 0, len(rs))
	for _, r := range rs {
		users = append(users, RecordUser(r))
	}
	return users
}
