package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
)

var (
	// ErrAssertionInvalid means the federated identity assertion failed
	// verification (malformed, expired or bad signature).
	ErrAssertionInvalid = errors.New("invalid identity assertion")
	// ErrPhoneMismatch means the client claimed a phone the assertion does
	// not vouch for.
	ErrPhoneMismatch = errors.New("phone mismatch")
)

// Assertion is a verified third-party proof of phone ownership.
type Assertion struct {
	Phone   string
	Subject string
}

// AssertionVerifier validates a raw federated identity token.
type AssertionVerifier interface {
	Verify(ctx context.Context, rawToken string) (Assertion, error)
}

// OIDCVerifier verifies ID tokens against a configured issuer and audience.
// With the Firebase securetoken issuer this covers Firebase phone-auth
// tokens without any vendor SDK.
type OIDCVerifier struct {
	verifier *gooidc.IDTokenVerifier
}

// NewOIDCVerifier performs issuer discovery and prepares a token verifier.
func NewOIDCVerifier(ctx context.Context, issuer, audience string) (*OIDCVerifier, error) {
	provider, err := gooidc.NewProvider(ctx, strings.TrimSuffix(issuer, "/"))
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	return &OIDCVerifier{verifier: provider.Verifier(&gooidc.Config{ClientID: audience})}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (Assertion, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return Assertion{}, fmt.Errorf("%w: %v", ErrAssertionInvalid, err)
	}
	var claims struct {
		PhoneNumber string `json:"phone_number"`
		Sub         string `json:"sub"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return Assertion{}, fmt.Errorf("%w: %v", ErrAssertionInvalid, err)
	}
	return Assertion{Phone: claims.PhoneNumber, Subject: claims.Sub}, nil
}

// NormalizePhone reduces a phone number to its canonical local form: digits
// only, country-code prefix stripped down to the trailing 10 digits.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}
