package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
}

// NewAuthService creates an AuthService backed by the given repositories.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, sessionTTL time.Duration) AuthService {
	return &authServiceImpl{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *authServiceImpl) Verify(ctx context.Context, token string) (string, bool) {
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return "", false
	}
	if session.Expired(time.Now().UTC()) {
		if err := s.sessions.DeleteByToken(ctx, token); err != nil {
			slog.Warn("failed to delete expired session", "error", err)
		}
		return "", false
	}
	return session.UserID, true
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}

func (s *authServiceImpl) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}
