// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when an insert or save would duplicate an email.
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// AccountRepository defines the operations the service needs from the account store.
// Implementations must write a single account atomically; nothing more is assumed.
type AccountRepository interface {
	// FindByEmail retrieves the account whose email matches exactly.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create inserts a new account. The account's ID must already be set.
	Create(ctx context.Context, account *entity.Account) error

	// Save persists every field of an existing account, located by its ID.
	Save(ctx context.Context, account *entity.Account) error
}
