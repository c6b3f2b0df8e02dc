// Package session keeps per-chat state for conversational surfaces. The core
// dispatcher is stateless; only the Telegram bot consults this store.
package session

import (
	"sync"
	"time"
)

// Session is what the bot remembers about one chat.
type Session struct {
	ChatID    string
	LastInput string
	UpdatedAt time.Time
}

// Store holds sessions in memory with concurrency safety.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session), now: time.Now}
}

// Get returns a copy of the chat's session and whether one exists.
func (s *Store) Get(chatID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	if !ok {
		return Session{ChatID: chatID}, false
	}
	return *sess, true
}

// Remember records input as the chat's last query.
func (s *Store) Remember(chatID, input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &Session{ChatID: chatID}
		s.sessions[chatID] = sess
	}
	sess.LastInput = input
	sess.UpdatedAt = s.now()
}

// Forget drops the chat's session.
func (s *Store) Forget(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of chats with a session.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
