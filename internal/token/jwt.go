package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

// Claims represents JWT claims with token type and identity fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	SessionID uuid.UUID `json:"session_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username,omitempty"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	TokenType string    `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey, now: time.Now}
}

// Issue signs claims with the server secret.
func (j *JWT) Issue(claims model.TokenClaims, ttl time.Duration) (string, error) {
	return j.IssueWithSecret(claims, j.secretKey, ttl)
}

// Verify checks a token signed with the server secret.
func (j *JWT) Verify(tokenString string) model.Verification {
	return j.VerifyWithSecret(tokenString, j.secretKey)
}

// IssueWithSecret signs claims with secret. The expiry is now+ttl.
func (j *JWT) IssueWithSecret(claims model.TokenClaims, secret string, ttl time.Duration) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Email:     claims.Email,
		Username:  claims.Username,
		IsAdmin:   claims.IsAdmin,
		TokenType: string(claims.Type),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.Type, err)
	}

	return tokenString, nil
}

// VerifyWithSecret checks signature and expiry against secret. It fails
// closed: any error yields Valid=false, and Expired is reported only when
// the signature is intact.
func (j *JWT) VerifyWithSecret(tokenString, secret string) model.Verification {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return model.Verification{SignatureInvalid: true}
		case errors.Is(err, jwt.ErrTokenExpired):
			return model.Verification{Expired: true, Claims: claims.toModel()}
		}
		return model.Verification{}
	}
	if !token.Valid {
		return model.Verification{}
	}

	return model.Verification{Valid: true, Claims: claims.toModel()}
}

func (c *Claims) toModel() model.TokenClaims {
	out := model.TokenClaims{
		Type:      model.TokenType(c.TokenType),
		UserID:    c.UserID,
		SessionID: c.SessionID,
		Email:     c.Email,
		Username:  c.Username,
		IsAdmin:   c.IsAdmin,
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
