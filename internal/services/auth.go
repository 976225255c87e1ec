package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophpos/internal/common"
	"github.com/dmitrijs2005/gophpos/internal/cryptox"
	"github.com/dmitrijs2005/gophpos/internal/logging"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/repositories/repomanager"
)

// AuthService registers cashiers and checks their credentials.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *AuthService {
	return &AuthService{db: db, repomanager: m, log: log}
}

// Register creates a cashier account. Empty fields, a confirmation that
// differs from password and an existing username are rejected.
func (s *AuthService) Register(ctx context.Context, username string, password, confirm []byte) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 || len(confirm) == 0 {
		return nil, ErrEmptyField
	}

	if string(password) != string(confirm) {
		return nil, ErrPasswordMismatch
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		s.log.Error(ctx, "hash password failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrUserExists
		}
		s.log.Error(ctx, "create user failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "user registered", "username", username)
	return user, nil
}

// Login returns the user when (username, password) matches a registered
// account. The username is trimmed the same way Register trims it.
func (s *AuthService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return nil, ErrEmptyField
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.log.Error(ctx, "load user failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	if err := cryptox.CheckPassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			s.log.Warn(ctx, "stored password hash unreadable", "username", username, "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	s.log.Info(ctx, "user logged in", "username", username)
	return user, nil
}
