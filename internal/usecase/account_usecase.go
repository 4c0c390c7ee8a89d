// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Image    string `json:"image" form:"image"`
}

// SignInInput defines the credentials presented at sign-in.
type SignInInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UpdateProfileInput locates an account by Email and overwrites every other non-empty field.
type UpdateProfileInput struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	NewEmail string `json:"newemail" form:"newemail"`
	Image    string `json:"image" form:"image"`
	Password string `json:"password" form:"password"`
}

// --- Output DTOs ---

// AccountProjection is the part of an account that may leave the service.
type AccountProjection struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage"`
}

// NewAccountProjection strips credential material from account.
func NewAccountProjection(account *entity.Account) *AccountProjection {
	projection := &AccountProjection{
		Username: account.Username,
		Email:    account.Email,
	}
	if account.HasImage() {
		image := account.Image
		projection.ProfileImage = &image
	}

	return projection
}

// AccountOutput wraps the projection returned by every account operation.
type AccountOutput struct {
	User *AccountProjection
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AccountOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AccountOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*AccountOutput, error)
}
