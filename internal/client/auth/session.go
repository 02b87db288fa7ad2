package auth

import (
	"sync"

	"github.com/iudanet/khutwa/internal/models"
)

// State is the authentication state of a Session
type State int

// Session states
const (
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Listener is notified after every session change.
// user is nil unless state is StateAuthenticated.
type Listener func(state State, user *models.User)

// Session holds the profile of the signed-in user, or nothing.
// Anyone may read it; only the flows in this package write it.
type Session struct {
	user      *models.User
	listeners map[int]Listener
	mu        sync.RWMutex
	state     State
	nextID    int
}

// NewSession создает сессию в состоянии StateUnknown
func NewSession() *Session {
	return &Session{
		listeners: make(map[int]Listener),
	}
}

// State returns the current authentication state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether a profile is held
func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Current returns a copy of the held profile, or nil when unauthenticated
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Subscribe registers fn for change notifications. The returned func
// removes the subscription.
func (s *Session) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// setUser заменяет профиль целиком (без слияния полей)
func (s *Session) setUser(user *models.User) {
	if user == nil {
		s.clear()
		return
	}
	u := *user
	s.set(StateAuthenticated, &u)
}

// clear переводит сессию в unauthenticated
func (s *Session) clear() {
	s.set(StateUnauthenticated, nil)
}

func (s *Session) set(state State, user *models.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	// Слушатели вызываются вне блокировки, чтобы они могли читать сессию
	var snapshot *models.User
	if user != nil {
		u := *user
		snapshot = &u
	}
	for _, fn := range listeners {
		fn(state, snapshot)
	}
}
