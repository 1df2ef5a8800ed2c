// Package model defines the domain types shared across the application.
package model

// User is the domain representation of a GitHub user. Fields the upstream
// API omits (the search endpoint returns no profile counters, private
// profiles may hide the display name) are left at their zero value.
type User struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url"`
	Name        string `json:"name,omitempty"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
}

// URL returns the profile page for the user.
func (u User) URL() string {
	return "https://github.com/" + u.Login
}

// SearchResult is an ordered page of users plus the response metadata the
// search endpoint reports alongside it.
type SearchResult struct {
	Total      int    `json:"total_count"`
	Incomplete bool   `json:"incomplete_results"`
	Users      []User `json:"items"`
}
