// Package wallet handles browser-wallet sign in: account validation, the
// pluggable authentication callback, and the signed session token issued
// once a wallet is accepted.
package wallet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAccount is returned for a malformed wallet address.
var ErrInvalidAccount = errors.New("invalid wallet account")

const accountHexLen = 40

// NormalizeAccount validates an Ethereum address and lower-cases it.
func NormalizeAccount(raw string) (string, error) {
	account := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasPrefix(account, "0x") || len(account) != 2+accountHexLen {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccount, raw)
	}
	for _, r := range account[2:] {
		if !isHex(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidAccount, raw)
		}
	}
	return account, nil
}

// ShortAccount abbreviates an account for compact display: 0x1234…abcd.
func ShortAccount(account string) string {
	if len(account) <= 12 {
		return account
	}
	return account[:6] + "…" + account[len(account)-4:]
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
