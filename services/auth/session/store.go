// Package session holds the authenticated user and token for the
// lifetime of the process and persists them across restarts.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/saylanihub/zakatms/internal/pkg/logger"
	"github.com/saylanihub/zakatms/internal/pkg/models"
)

// persistedSession is the on-disk representation of a session
type persistedSession struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Store is the process-wide session holder. It starts in the loading
// state until Rehydrate has run, so consumers can avoid redirecting
// before persisted state is back.
type Store struct {
	mu       sync.RWMutex
	filePath string
	user     *models.User
	token    string
	loading  bool
}

// NewStore creates a session store backed by the given file path
func NewStore(cfg models.SessionConfig) *Store {
	return &Store{
		filePath: cfg.FilePath,
		loading:  true,
	}
}

// Rehydrate loads the persisted session from disk. A missing file or a
// token that is already expired leaves the store signed out. Always
// clears the loading state.
func (s *Store) Rehydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var persisted persistedSession
	if err := json.Unmarshal(data, &persisted); err != nil {
		logger.Warn("Discarding corrupt session file", logger.Err(err))
		return nil
	}

	if persisted.User == nil || persisted.Token == "" {
		return nil
	}

	if tokenExpired(persisted.Token) {
		logger.Info("Persisted session token expired, signing out",
			logger.String("email", persisted.User.Email))
		_ = os.Remove(s.filePath)
		return nil
	}

	s.user = persisted.User
	s.token = persisted.Token
	return nil
}

// Login persists the user and token to disk, then stores them. A
// failed write leaves the store signed out so the in-memory state
// never outlives what survives a restart.
func (s *Store) Login(user *models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(persistedSession{User: user, Token: token}); err != nil {
		return err
	}

	s.user = user
	s.token = token
	s.loading = false
	return nil
}

// Logout clears the session and removes the persisted state
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// User returns the current user, nil when signed out
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current session token. Implements the HTTP
// client's TokenProvider.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAdmin reports whether the signed-in user carries the admin role
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}

// Loading reports whether persisted state is still being rehydrated
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// persist writes a session to disk. Caller holds the lock.
func (s *Store) persist(sess persistedSession) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// tokenExpired checks the token's exp claim without verifying the
// signature. The token is otherwise opaque to the client; a token that
// does not parse as a JWT is kept and left for the server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}

	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}
