// Package session tracks which account, if any, is currently authenticated.
// Exactly one session is representable; there is no identifier, expiry, or
// multi-session support, and nothing here is persisted.
package session

import "github.com/dmitrijs2005/taskkeeper/internal/common"

type Session struct {
	username string
}

func New() *Session {
	return &Session{}
}

// Login sets the active session. Callers verify credentials first; Login
// itself is unconditional and replaces any previous session.
func (s *Session) Login(username string) {
	s.username = username
}

// Logout clears the active session. Returns common.ErrorNotLoggedIn when
// there is none.
func (s *Session) Logout() error {
	if s.username == "" {
		return common.ErrorNotLoggedIn
	}
	s.username = ""
	return nil
}

// Current returns the authenticated username and whether a session exists.
func (s *Session) Current() (string, bool) {
	return s.username, s.username != ""
}
