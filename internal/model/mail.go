package model

import "context"

// Mail is an outbound message.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer hands mail to a delivery backend.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// DonationMatcher decides whether viewer is a matched donator of owner.
type DonationMatcher interface {
	IsMatchedDonator(ctx context.Context, viewer, owner User) (bool, error)
}

// AttemptLimiter counts failed attempts per key inside a window.
type AttemptLimiter interface {
	// Allow reports whether another attempt under key is permitted.
	Allow(ctx context.Context, key string) (bool, error)
	// Fail records a failed attempt under key.
	Fail(ctx context.Context, key string) error
	// Reset clears the failures recorded under key.
	Reset(ctx context.Context, key string) error
}
