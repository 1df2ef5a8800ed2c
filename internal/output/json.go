package output

import (
	"encoding/json"
	"io"

	"github.com/spiffcs/ghfind/internal/model"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// FormatUsers outputs a user list as JSON
func (f *JSONFormatter) FormatUsers(users []model.User, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(users)
}

// FormatUser outputs a single user as JSON
func (f *JSONFormatter) FormatUser(user model.User, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(user)
}
