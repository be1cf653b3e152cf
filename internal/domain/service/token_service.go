package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that cannot be trusted:
// malformed structure, bad signature, unsupported signing algorithm, or expiry.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uint64 `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying stateless
// session tokens. The server holds no session store; possession of a valid
// token is the whole session.
type TokenService interface {
	// Issue creates a signed token embedding the user's identity claims.
	Issue(userID uint64, email string) (string, error)

	// Verify checks the token signature and validity window and returns the
	// embedded claims. Any failure is reported as ErrInvalidToken.
	Verify(tokenString string) (*Claims, error)
}
