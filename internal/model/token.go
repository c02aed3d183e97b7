package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenType separates the purposes a signed token can serve.
type TokenType string

const (
	TokenAccess   TokenType = "access"
	TokenRefresh  TokenType = "refresh"
	TokenRecovery TokenType = "recovery"
)

// TokenClaims is the payload carried by every signed token.
type TokenClaims struct {
	Type      TokenType
	UserID    uuid.UUID
	SessionID uuid.UUID
	Email     string
	Username  string
	IsAdmin   bool
	ExpiresAt time.Time
}

// Verification is the outcome of checking a token. Expired is only set when
// the signature is intact and the token is past its expiry. SignatureInvalid
// marks a well-formed token signed with another key or altered after signing.
type Verification struct {
	Valid            bool
	Expired          bool
	SignatureInvalid bool
	Claims           TokenClaims
}

// TokenManager signs and verifies tokens.
type TokenManager interface {
	Issue(claims TokenClaims, ttl time.Duration) (string, error)
	Verify(token string) Verification
	// IssueWithSecret and VerifyWithSecret use a caller supplied secret
	// instead of the process-wide one.
	IssueWithSecret(claims TokenClaims, secret string, ttl time.Duration) (string, error)
	VerifyWithSecret(token, secret string) Verification
}
