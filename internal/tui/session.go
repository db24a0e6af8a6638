package tui

import "time"

// Session holds the state of one authenticated TUI session. It is created
// by the login flow and handed to every main-loop page explicitly; there
// is no package-level session state.
type Session struct {
	Username   string
	LoggedInAt time.Time
}

// NewSession opens a session for username.
func NewSession(username string) Session {
	return Session{
		Username:   username,
		LoggedInAt: time.Now(),
	}
}
