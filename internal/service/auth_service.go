package service

import (
	"context"
	"errors"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/repository"
	"github.com/beegood/ufund-api/internal/security"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

// AuthService handles login, logout, and session validation.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login authenticates with a plaintext password and issues a session,
// replacing any existing session for the user.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*domain.Session, error) {
	return s.login(ctx, userName, security.HashPassword(password))
}

// LoginWithHash authenticates with an already-hashed credential. The stored
// digest is deterministic, so the comparison is plain equality.
func (s *AuthService) LoginWithHash(ctx context.Context, userName, digest string) (*domain.Session, error) {
	return s.login(ctx, userName, digest)
}

func (s *AuthService) login(ctx context.Context, userName, digest string) (*domain.Session, error) {
	user, err := s.users.GetByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Password != digest {
		return nil, ErrInvalidCredentials
	}
	return s.sessions.Create(ctx, user.ID, user.UserName)
}

// Logout deletes the user's session and returns it.
func (s *AuthService) Logout(ctx context.Context, userName string) (*domain.Session, error) {
	session, err := s.sessions.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if _, err := s.sessions.Delete(ctx, session.ID); err != nil {
		return nil, err
	}
	return session, nil
}

// CheckSession reports whether the user's session is still valid.
func (s *AuthService) CheckSession(ctx context.Context, userName string) (bool, error) {
	session, err := s.sessions.GetByUserName(ctx, userName)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, ErrSessionNotFound
	}
	return !s.sessions.IsExpired(session), nil
}

// Refresh revalidates the user's session by issuing a replacement with a
// fresh timer.
func (s *AuthService) Refresh(ctx context.Context, userName string) (*domain.Session, error) {
	user, err := s.users.GetByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	session, err := s.sessions.Create(ctx, user.ID, userName)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
