// Package session holds the admin flag and the token that carries it between
// requests. It is a convenience gate for the console, not a security boundary.
package session

import "sync"

type State struct {
	mu      sync.RWMutex
	isAdmin bool
}

func (s *State) Login(isAdmin bool) {
	s.mu.Lock()
	s.isAdmin = isAdmin
	s.mu.Unlock()
}

func (s *State) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}
