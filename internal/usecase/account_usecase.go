// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the signed session token after a successful login.
type LoginOutput struct {
	Token string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (HTTP handlers) depends on.
type AccountUsecase interface {
	// Register checks email uniqueness, hashes the password and persists the
	// user. A taken email yields the email-in-use domain error.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login looks the user up by email, verifies the password hash and issues
	// a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile returns the user record for an authenticated identity.
	GetProfile(ctx context.Context, userID uint64) (*entity.User, error)
}
