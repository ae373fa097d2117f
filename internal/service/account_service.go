package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tableside/internal/domain"
)

const (
	bcryptCost      = 10
	defaultRoleName = "customer"
)

type AccountService struct {
	repo     UserRepository
	sessions SessionStore
}

func NewAccountService(repo UserRepository, sessions SessionStore) *AccountService {
	return &AccountService{repo: repo, sessions: sessions}
}

// Register creates a new account with the default customer role. Username
// and email are matched exactly when checking for duplicates.
func (s *AccountService) Register(username, password, email string) (*domain.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, ErrMissingField
	}

	count, err := s.repo.CountByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	count, err = s.repo.CountByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role, err := s.repo.GetRoleByName(defaultRoleName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default role: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hashed),
		Email:        email,
		RoleID:       role.ID,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and opens a session. The returned token is
// the only thing the client keeps; the snapshot lives in the store.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	user, err := s.repo.GetUserByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrUnknownUser
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidPassword
	}

	role, err := s.repo.GetRole(user.RoleID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}

	session := &domain.Session{
		Username:  user.Username,
		RoleID:    role.ID,
		RoleName:  role.Name,
		LoginTime: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, token, session); err != nil {
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}
	return token, session, nil
}

func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AccountService) RoleID(username string) (int, error) {
	user, err := s.repo.GetUserByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUnknownUser
	}
	if err != nil {
		return 0, err
	}
	return user.RoleID, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var _ AccountServiceInterface = (*AccountService)(nil)
