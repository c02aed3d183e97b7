// Package twofactor issues and checks time-based one-time passwords.
package twofactor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	period   = 30
	qrWidth  = 256
	qrHeight = 256
)

// Setup is the material a user needs to enrol an authenticator.
type Setup struct {
	Secret     string
	OTPAuthURL string
	// QRCode is a PNG data URL encoding OTPAuthURL.
	QRCode string
}

// TOTP generates secrets and validates RFC 6238 codes.
type TOTP struct {
	issuer string
	now    func() time.Time
}

// NewTOTP creates a TOTP module that labels keys with issuer.
func NewTOTP(issuer string) *TOTP {
	return &TOTP{issuer: issuer, now: time.Now}
}

// Generate creates a new secret for account and renders its QR code.
func (t *TOTP) Generate(account string) (Setup, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      t.issuer,
		AccountName: account,
		Period:      period,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return Setup{}, fmt.Errorf("failed to generate totp key: %w", err)
	}

	img, err := key.Image(qrWidth, qrHeight)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to render qr code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Setup{}, fmt.Errorf("failed to encode qr code: %w", err)
	}

	return Setup{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
		QRCode:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// Validate reports whether code matches secret at the current time step.
// Codes from neighbouring steps are rejected.
func (t *TOTP) Validate(secret, code string) bool {
	ok, err := totp.ValidateCustom(code, secret, t.now(), totp.ValidateOpts{
		Period:    period,
		Skew:      0,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// Code returns the code for secret at the current time step.
func (t *TOTP) Code(secret string) (string, error) {
	code, err := totp.GenerateCodeCustom(secret, t.now(), totp.ValidateOpts{
		Period:    period,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate totp code: %w", err)
	}
	return code, nil
}
