package wallet

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrUnavailable is returned when no authenticator is configured.
	ErrUnavailable = errors.New("wallet authentication is not configured")
	// ErrRejected is returned when the authenticator refuses the credentials.
	ErrRejected = errors.New("wallet authentication rejected")
	// ErrMissingSignature is returned when credentials carry no signature.
	ErrMissingSignature = errors.New("wallet signature is required")
)

// Credentials are posted by the page after the wallet signs the challenge.
type Credentials struct {
	Account   string
	Signature string
}

// Validate normalizes the account and checks the signature is present.
func (c Credentials) Validate() (Credentials, error) {
	account, err := NormalizeAccount(c.Account)
	if err != nil {
		return Credentials{}, err
	}
	signature := strings.TrimSpace(c.Signature)
	if signature == "" {
		return Credentials{}, ErrMissingSignature
	}
	return Credentials{Account: account, Signature: signature}, nil
}

// Authenticator verifies wallet credentials. Signature checking lives with
// the caller; this package never inspects the signature itself.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) error
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, creds Credentials) error

// Authenticate calls f.
func (f AuthenticatorFunc) Authenticate(ctx context.Context, creds Credentials) error {
	return f(ctx, creds)
}

// Unavailable is the default Authenticator; it refuses every request.
var Unavailable Authenticator = unavailable{}

type unavailable struct{}

func (unavailable) Authenticate(context.Context, Credentials) error {
	return ErrUnavailable
}

// AllowList accepts only the listed accounts. It backs local development
// and demos where no signature service is running.
func AllowList(accounts ...string) (Authenticator, error) {
	allowed := make(map[string]struct{}, len(accounts))
	for _, raw := range accounts {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		account, err := NormalizeAccount(raw)
		if err != nil {
			return nil, err
		}
		allowed[account] = struct{}{}
	}
	if len(allowed) == 0 {
		return Unavailable, nil
	}
	return AuthenticatorFunc(func(_ context.Context, creds Credentials) error {
		if _, ok := allowed[creds.Account]; !ok {
			return ErrRejected
		}
		return nil
	}), nil
}
