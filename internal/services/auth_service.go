package services

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/profile/internal/models"
	"github.com/example/profile/internal/utils"
)

var (
	// ErrInvalidCredentials rejects a bad username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken rejects a bearer token that was never issued,
	// was revoked, or has expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// CredentialVerifier checks a username/password pair. Implementations
// decide where credentials live; the gate only cares about yes or no.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against the single configured admin
// pair. The password side is either a bcrypt hash or, for local
// development, a plaintext value compared in constant time.
type StaticCredentials struct {
	Username     string
	PasswordHash string
	Password     string
}

// Verify reports whether the pair matches the configured credential.
func (c StaticCredentials) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return false
	}
	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}

// AuthService issues and validates admin session tokens. Every issued
// token is kept in an in-process registry and Verify requires
// membership, so a token is only as good as the session behind it;
// restarting the process invalidates all outstanding sessions.
type AuthService struct {
	verifier CredentialVerifier
	secret   string
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]models.Session
}

// NewAuthService wires the gate to a credential verifier, a signing
// secret, and a session lifetime.
func NewAuthService(verifier CredentialVerifier, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		verifier: verifier,
		secret:   secret,
		ttl:      ttl,
		sessions: make(map[string]models.Session),
	}
}

// Authenticate checks the pair and, on success, issues a signed token
// registered against a fresh session. A bad pair returns
// ErrInvalidCredentials and no token.
func (s *AuthService) Authenticate(username, password string) (models.Session, string, error) {
	if !s.verifier.Verify(username, password) {
		return models.Session{}, "", ErrInvalidCredentials
	}

	now := time.Now()
	sess := models.Session{
		ID:        uuid.NewString(),
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	token, err := utils.GenerateToken(s.secret, username, sess.ID, s.ttl)
	if err != nil {
		return models.Session{}, "", err
	}

	s.mu.Lock()
	s.sweepLocked(now)
	s.sessions[token] = sess
	s.mu.Unlock()

	return sess, token, nil
}

// Verify accepts only tokens present in the registry and still within
// their lifetime, then re-checks the signature. Expired entries are
// dropped on sight.
func (s *AuthService) Verify(token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrInvalidToken
	}

	s.mu.Lock()
	sess, ok := s.sessions[token]
	if ok && time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return models.Session{}, ErrInvalidToken
	}
	if _, _, err := utils.ParseToken(s.secret, token); err != nil {
		return models.Session{}, ErrInvalidToken
	}
	return sess, nil
}

// Revoke drops the token from the registry. Safe on tokens that were
// never issued.
func (s *AuthService) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *AuthService) sweepLocked(now time.Time) {
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
