package store

import (
	"log"
	"sync"
)

// adminPassword is a single shared secret. Hashing, rate limiting and
// session expiry are out of scope for this prototype.
const adminPassword = "admin123"

// AuthStore tracks which sessions hold the admin flag.
type AuthStore struct {
	mu       sync.Mutex
	admins   map[string]bool
	snapshot *Snapshot
}

func NewAuthStore(snapshot *Snapshot) (*AuthStore, error) {
	s := &AuthStore{
		admins:   make(map[string]bool),
		snapshot: snapshot,
	}
	if err := snapshot.Load(&s.admins); err != nil {
		return nil, err
	}
	return s, nil
}

// Login sets the admin flag for the session if and only if the password
// matches.
func (s *AuthStore) Login(sessionID, password string) bool {
	if password != adminPassword {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[sessionID] = true
	s.persist()
	return true
}

func (s *AuthStore) Logout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.admins, sessionID)
	s.persist()
}

func (s *AuthStore) IsAdmin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.admins[sessionID]
}

func (s *AuthStore) persist() {
	if err := s.snapshot.Save(s.admins); err != nil {
		log.Printf("❌ Failed to persist admin sessions: %v", err)
	}
}
