package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/santiment/sanbase/internal/services/web/module"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"github.com/santiment/sanbase/internal/wallet"
)

const (
	keyInvalidAccount   = "auth.invalid_account"
	keyMissingSignature = "auth.missing_signature"
	keyRejected         = "auth.rejected"
	keyUnavailable      = "auth.unavailable"
)

type service struct {
	authenticator wallet.Authenticator
	sessions      *wallet.Sessions
}

type signIn struct {
	token   string
	session wallet.Session
}

func newService(deps module.Dependencies) service {
	return service{authenticator: deps.WalletAuthenticator(), sessions: deps.Sessions}
}

// normalizeAccount validates an account preselected by the wallet.
func (service) normalizeAccount(raw string) (string, error) {
	account, err := wallet.NormalizeAccount(raw)
	if err != nil {
		return "", mapWalletError(err)
	}
	return account, nil
}

func (s service) signIn(ctx context.Context, creds wallet.Credentials) (signIn, error) {
	creds, err := creds.Validate()
	if err != nil {
		return signIn{}, mapWalletError(err)
	}
	if s.sessions == nil {
		return signIn{}, mapWalletError(wallet.ErrUnavailable)
	}
	if err := s.authenticator.Authenticate(ctx, creds); err != nil {
		return signIn{}, mapWalletError(err)
	}
	token, session, err := s.sessions.Issue(creds.Account)
	if err != nil {
		return signIn{}, apperrors.Wrap(apperrors.KindUnknown, fmt.Errorf("issue session: %w", err))
	}
	return signIn{token: token, session: session}, nil
}

func mapWalletError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wallet.ErrInvalidAccount):
		return apperrors.Error{Kind: apperrors.KindInvalidInput, Key: keyInvalidAccount, Message: err.Error(), Cause: err}
	case errors.Is(err, wallet.ErrMissingSignature):
		return apperrors.Error{Kind: apperrors.KindInvalidInput, Key: keyMissingSignature, Message: err.Error(), Cause: err}
	case errors.Is(err, wallet.ErrRejected):
		return apperrors.Error{Kind: apperrors.KindUnauthorized, Key: keyRejected, Message: err.Error(), Cause: err}
	case errors.Is(err, wallet.ErrUnavailable):
		return apperrors.Error{Kind: apperrors.KindUnavailable, Key: keyUnavailable, Message: err.Error(), Cause: err}
	default:
		return apperrors.Wrap(apperrors.KindUnknown, fmt.Errorf("authenticate wallet: %w", err))
	}
}
