// Package ui declares what the client needs from whatever renders it: a way
// to change the current page and a way to show a notification. Pages, the
// session guard and the submission controller depend only on these
// interfaces, so any renderer (the terminal REPL, a test recorder) can drive
// them.
package ui

import "strings"

// Navigator moves the renderer to another page.
type Navigator interface {
	Navigate(path string)
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(n Notice)
}

// Kind is the visual category of a notice.
type Kind string

const (
	KindInfo        Kind = "info"
	KindDestructive Kind = "destructive"
)

// Notice is a single user-facing notification.
type Notice struct {
	Kind        Kind
	Title       string
	Description string
}

// Page paths.
const (
	PathSignup      = "/signup"
	PathLogin       = "/login"
	PathCreateBadge = "/badges/create"
	PathBadges      = "/badges/"
)

// BadgePath is the display page of the badge owned by id.
func BadgePath(id string) string {
	return PathBadges + id
}

// BadgeIDFromPath extracts the id from a "/badges/{id}" path. The create page
// and nested paths are not badge pages.
func BadgeIDFromPath(path string) (string, bool) {
	id, ok := strings.CutPrefix(path, PathBadges)
	if !ok || id == "" || strings.Contains(id, "/") || path == PathCreateBadge {
		return "", false
	}
	return id, true
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }
