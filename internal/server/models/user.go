// Package models contains the server-side data model.
package models

import "time"

// User is a stored user record. PasswordHash holds the bcrypt hash of the
// user's password and must never leave the server.
type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
