// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the only entity in the system: a person who can sign in with email and password.
type Account struct {
	ID           uuid.UUID // Internal identity; stays fixed when the email changes.
	Username     string    // Display name, free-form.
	Email        string    // Lookup key for sign-in and profile updates.
	PasswordHash string    // bcrypt encoding of the password. Never the plaintext.
	Image        string    // Optional avatar reference (URL or encoded payload). Empty means absent.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasImage reports whether an avatar reference is set.
func (a *Account) HasImage() bool {
	return a.Image != ""
}
