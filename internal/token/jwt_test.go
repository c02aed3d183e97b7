package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/garden-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	claims := model.TokenClaims{
		Type:      model.TokenAccess,
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		Email:     "x@example.com",
		Username:  "x",
		IsAdmin:   true,
	}

	tok, err := j.Issue(claims, time.Minute)
	require.NoError(t, err)

	v := j.Verify(tok)
	require.True(t, v.Valid)
	assert.False(t, v.Expired)
	assert.Equal(t, claims.UserID, v.Claims.UserID)
	assert.Equal(t, claims.SessionID, v.Claims.SessionID)
	assert.Equal(t, claims.Email, v.Claims.Email)
	assert.Equal(t, claims.Username, v.Claims.Username)
	assert.True(t, v.Claims.IsAdmin)
	assert.Equal(t, model.TokenAccess, v.Claims.Type)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret")
	issuedAt := time.Now()
	j.now = func() time.Time { return issuedAt }

	tok, err := j.Issue(model.TokenClaims{Type: model.TokenAccess, UserID: uuid.New()}, time.Minute)
	require.NoError(t, err)

	j.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	v := j.Verify(tok)
	assert.False(t, v.Valid)
	assert.True(t, v.Expired)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	other := NewJWT("other")

	tok, err := j.Issue(model.TokenClaims{Type: model.TokenAccess, UserID: uuid.New()}, time.Minute)
	require.NoError(t, err)

	v := other.Verify(tok)
	assert.False(t, v.Valid)
	assert.False(t, v.Expired)
	assert.True(t, v.SignatureInvalid)
	assert.Equal(t, uuid.Nil, v.Claims.UserID)
}

// flipSignatureByte corrupts one byte of the signature segment.
func flipSignatureByte(t *testing.T, tok string) string {
	t.Helper()
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[len(sig)/2] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)
	return strings.Join(parts, ".")
}

func TestJWT_TamperedSignature(t *testing.T) {
	j := NewJWT("secret")
	issuedAt := time.Now()
	j.now = func() time.Time { return issuedAt }

	tok, err := j.Issue(model.TokenClaims{Type: model.TokenAccess, UserID: uuid.New()}, time.Minute)
	require.NoError(t, err)
	tampered := flipSignatureByte(t, tok)

	v := j.Verify(tampered)
	assert.False(t, v.Valid)
	assert.False(t, v.Expired)
	assert.True(t, v.SignatureInvalid)

	// an altered token is reported as such even once it would have expired
	j.now = func() time.Time { return issuedAt.Add(time.Hour) }
	v = j.Verify(tampered)
	assert.False(t, v.Expired)
	assert.True(t, v.SignatureInvalid)
}

func TestJWT_ExpiredWithWrongSecretIsNotExpired(t *testing.T) {
	j := NewJWT("secret")
	issuedAt := time.Now()
	j.now = func() time.Time { return issuedAt }

	tok, err := j.Issue(model.TokenClaims{Type: model.TokenRefresh}, time.Minute)
	require.NoError(t, err)

	other := NewJWT("other")
	other.now = func() time.Time { return issuedAt.Add(time.Hour) }
	v := other.Verify(tok)
	assert.False(t, v.Valid)
	assert.False(t, v.Expired)
}

func TestJWT_WithSecret(t *testing.T) {
	j := NewJWT("secret")
	id := uuid.New()

	tok, err := j.IssueWithSecret(model.TokenClaims{Type: model.TokenRecovery, UserID: id, Email: "a@b.c"}, "secret$hash", time.Minute)
	require.NoError(t, err)

	assert.True(t, j.VerifyWithSecret(tok, "secret$hash").Valid)
	assert.False(t, j.VerifyWithSecret(tok, "secret$otherhash").Valid)
	assert.False(t, j.Verify(tok).Valid)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret")

	for _, tok := range []string{"", "abc", "a.b.c"} {
		v := j.Verify(tok)
		assert.False(t, v.Valid, tok)
		assert.False(t, v.Expired, tok)
		assert.False(t, v.SignatureInvalid, tok)
	}
}
