// Package auth issues and validates bearer-token sessions. The core domain
// packages never see credentials; they only consume the resolved user ID.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTTL is how long an issued session stays valid.
const DefaultTTL = 30 * 24 * time.Hour

const tokenBytes = 32

// ErrInvalidCredentials covers unknown email and wrong password alike, so the
// response does not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service issues sessions backed by the sessions table.
type Service struct {
	db  *storage.DB
	ttl time.Duration

	// tokenFunc is injectable for tests.
	tokenFunc func() (string, error)
}

// NewService creates an auth service with the given session TTL.
func NewService(db *storage.DB, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{db: db, ttl: ttl, tokenFunc: generateToken}
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Login verifies the password against the stored hash and issues a session.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, *models.User, error) {
	user, err := s.db.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.issue(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.db.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

// IssueFor creates a session for an already-verified user, used right after
// registration.
func (s *Service) IssueFor(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	return s.issue(ctx, userID)
}

func (s *Service) issue(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	token, err := s.tokenFunc()
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	now := time.Now().UTC()
	session := models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.db.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Verify resolves a bearer token to its user ID. Missing and expired tokens
// both report storage.ErrNotFound.
func (s *Service) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := s.db.GetSession(ctx, token, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	return session.UserID, nil
}

// Logout invalidates a session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.db.DeleteSession(ctx, token)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
