// Package output renders search results and user profiles for the
// non-interactive commands.
package output

import (
	"io"

	"github.com/spiffcs/ghfind/internal/model"
)

// Format represents the output format
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	FormatUsers(users []model.User, w io.Writer) error
	FormatUser(user model.User, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &TableFormatter{}
	}
}
