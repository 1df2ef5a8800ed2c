package output

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/spiffcs/ghfind/internal/model"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// TableFormatter formats output as a terminal table
type TableFormatter struct{}

// hyperlink creates a clickable terminal hyperlink using OSC 8
// Format: \033]8;;URL\033\\TEXT\033]8;;\033\\
func hyperlink(text, url string) string {
	// Only use hyperlinks if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// displayWidth returns the visible width of a string in terminal columns
// accounting for wide characters and stripping ANSI escape sequences
func displayWidth(s string) int {
	return runewidth.StringWidth(stripAnsi(s))
}

// truncateToWidth truncates a string to fit within maxWidth display columns
func truncateToWidth(s string, maxWidth int) (string, int) {
	plain := stripAnsi(s)
	width := runewidth.StringWidth(plain)

	if width <= maxWidth {
		return s, width
	}

	cutWidth := 0
	cutIndex := 0
	for i, r := range plain {
		rw := runewidth.RuneWidth(r)
		if cutWidth+rw > maxWidth-3 { // Leave room for "..."
			cutIndex = i
			break
		}
		cutWidth += rw
	}

	if cutIndex > 0 && cutIndex < len(plain) {
		return plain[:cutIndex] + "...", maxWidth
	}
	return plain[:maxWidth-3] + "...", maxWidth
}

// padRight pads a string with spaces to reach the target visible width
func padRight(s string, visibleWidth, targetWidth int) string {
	if visibleWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-visibleWidth)
}

// FormatUsers outputs users as a table
func (f *TableFormatter) FormatUsers(users []model.User, w io.Writer) error {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return nil
	}

	// Column widths
	const (
		colLogin = 22
		colName  = 26
		colID    = 10
	)

	// Header
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n",
		colLogin, "Login",
		colName, "Name",
		colID, "ID",
		"Profile")
	fmt.Fprintln(w, strings.Repeat("-", colLogin+colName+colID+30))

	for _, u := range users {
		login := color.CyanString(u.Login)
		login, visibleLoginLen := truncateToWidth(login, colLogin)
		linkedLogin := hyperlink(login, u.URL())
		linkedLogin = padRight(linkedLogin, visibleLoginLen, colLogin)

		name := u.Name
		name, nameWidth := truncateToWidth(name, colName)

		fmt.Fprintf(w, "%s  %s  %-*d  %s\n",
			linkedLogin,
			padRight(name, nameWidth, colName),
			colID, u.ID,
			u.URL(),
		)
	}

	fmt.Fprintf(w, "\n%d users\n", len(users))
	return nil
}

// FormatUser outputs a single user profile
func (f *TableFormatter) FormatUser(user model.User, w io.Writer) error {
	fmt.Fprintf(w, "%s\n", color.CyanString(user.Login))
	if user.Name != "" {
		fmt.Fprintf(w, "  Name:         %s\n", user.Name)
	}
	fmt.Fprintf(w, "  ID:           %d\n", user.ID)
	fmt.Fprintf(w, "  Followers:    %d\n", user.Followers)
	fmt.Fprintf(w, "  Public repos: %d\n", user.PublicRepos)
	if user.AvatarURL != "" {
		fmt.Fprintf(w, "  Avatar:       %s\n", user.AvatarURL)
	}
	fmt.Fprintf(w, "  Profile:      %s\n", user.URL())
	return nil
}
