package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avoronov/authgate/internal/dbx"
	"github.com/avoronov/authgate/internal/server/auth"
	"github.com/avoronov/authgate/internal/server/config"
	"github.com/avoronov/authgate/internal/server/models"
	"github.com/avoronov/authgate/internal/shared"
)

// Service implements the authentication flows:
//   - Register: validate input, check email uniqueness, hash, persist
//   - Login: look up by email, verify password, issue a token
//   - GetUser: fetch a record by id for token-gated access
type Service struct {
	db               *sql.DB
	repos            RepositoryManager
	jwtSecret        []byte
	tokenValidityDur time.Duration
}

func NewService(db *sql.DB, m RepositoryManager, cfg *config.Config) *Service {
	return &Service{
		db:               db,
		repos:            m,
		jwtSecret:        []byte(cfg.SecretKey),
		tokenValidityDur: cfg.TokenTTL,
	}
}

// Register creates a new user with a hashed password. The uniqueness
// pre-check and the insert run in one transaction; the unique index on email
// remains the authoritative conflict signal either way.
func (s *Service) Register(ctx context.Context, name, email, password, confirmPassword string) (*models.User, error) {
	if name == "" {
		return nil, shared.ErrorNameRequired
	}
	if email == "" {
		return nil, shared.ErrorEmailRequired
	}
	if password == "" {
		return nil, shared.ErrorPasswordRequired
	}
	if password != confirmPassword {
		return nil, shared.ErrorPasswordMismatch
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		exists, err := repo.EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return shared.ErrorEmailTaken
		}

		user, err = repo.Create(ctx, &models.User{
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed token carrying the
// user's id. An unknown email yields shared.ErrorNotFound, a wrong password
// shared.ErrorInvalidPassword.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", shared.ErrorEmailRequired
	}
	if password == "" {
		return "", shared.ErrorPasswordRequired
	}

	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return "", shared.ErrorNotFound
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", shared.ErrorInvalidPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDur)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return token, nil
}

// GetUser returns the user record with the given id.
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repos.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}
