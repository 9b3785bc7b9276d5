// Package users holds the user store and the authentication flows built on
// top of it: registration, login and token-gated lookup.
package users

import (
	"context"

	"github.com/avoronov/authgate/internal/dbx"
	"github.com/avoronov/authgate/internal/server/models"
)

// Repository is the user store. Records are reachable by unique email and
// by id; Create assigns the id.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// RepositoryManager hands out a Repository bound to the given database
// handle, so flows can run against either *sql.DB or an open transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) Repository
}
