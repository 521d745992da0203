package wallet

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultSessionTTL bounds a wallet session.
	DefaultSessionTTL = 24 * time.Hour
	// DefaultIssuer is the JWT issuer used when none is configured.
	DefaultIssuer = "sanbase"

	minSecretLen = 32
)

var (
	// ErrInvalidSession is returned for tampered, malformed, or foreign tokens.
	ErrInvalidSession = errors.New("wallet session is invalid")
	// ErrExpiredSession is returned once a token's exp has passed.
	ErrExpiredSession = errors.New("wallet session is expired")
)

// sessionEnv holds raw env values before post-parse validation.
type sessionEnv struct {
	Issuer string        `env:"SANBASE_SESSION_ISSUER" envDefault:"sanbase"`
	Secret string        `env:"SANBASE_SESSION_SECRET"`
	TTL    time.Duration `env:"SANBASE_SESSION_TTL" envDefault:"24h"`
}

// SessionConfig configures token issuing and verification.
type SessionConfig struct {
	Issuer string
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

// LoadSessionConfigFromEnv reads session configuration. A missing secret
// yields a random per-process key, so sessions do not survive restarts.
func LoadSessionConfigFromEnv(now func() time.Time) (SessionConfig, bool, error) {
	var raw sessionEnv
	if err := env.Parse(&raw); err != nil {
		return SessionConfig{}, false, fmt.Errorf("parse session env: %w", err)
	}
	cfg := SessionConfig{Issuer: strings.TrimSpace(raw.Issuer), TTL: raw.TTL, Now: now}
	secret := strings.TrimSpace(raw.Secret)
	if secret == "" {
		generated, err := RandomSecret()
		if err != nil {
			return SessionConfig{}, false, err
		}
		cfg.Secret = generated
		return cfg, true, nil
	}
	decoded, err := decodeBase64(secret)
	if err != nil {
		return SessionConfig{}, false, fmt.Errorf("decode SANBASE_SESSION_SECRET: %w", err)
	}
	cfg.Secret = decoded
	return cfg, false, nil
}

// RandomSecret returns a fresh signing key.
func RandomSecret() ([]byte, error) {
	secret := make([]byte, minSecretLen)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	return secret, nil
}

// Session is a verified wallet session.
type Session struct {
	Account   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Account string `json:"account"`
}

// Sessions issues and verifies HS256 session tokens.
type Sessions struct {
	cfg SessionConfig
}

// NewSessions validates cfg and fills defaults.
func NewSessions(cfg SessionConfig) (*Sessions, error) {
	if len(cfg.Secret) < minSecretLen {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretLen)
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Sessions{cfg: cfg}, nil
}

// Issue signs a token for account.
func (s *Sessions) Issue(account string) (string, Session, error) {
	account, err := NormalizeAccount(account)
	if err != nil {
		return "", Session{}, err
	}
	now := s.cfg.Now().UTC().Truncate(time.Second)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   account,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
		Account: account,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign wallet session: %w", err)
	}
	return token, Session{Account: account, IssuedAt: now, ExpiresAt: now.Add(s.cfg.TTL)}, nil
}

// Verify checks the token signature, issuer, and lifetime.
func (s *Sessions) Verify(token string) (Session, error) {
	token = strings.TrimSpace(token)
	if s == nil || token == "" {
		return Session{}, ErrInvalidSession
	}
	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Session{}, ErrInvalidSession
	}
	if parsed.Issuer != s.cfg.Issuer || parsed.ExpiresAt == nil || parsed.IssuedAt == nil {
		return Session{}, ErrInvalidSession
	}
	account, err := NormalizeAccount(parsed.Account)
	if err != nil || account != parsed.Subject {
		return Session{}, ErrInvalidSession
	}
	now := s.cfg.Now().UTC()
	if !parsed.ExpiresAt.Time.After(now) {
		return Session{}, ErrExpiredSession
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time) {
		return Session{}, ErrInvalidSession
	}
	return Session{
		Account:   account,
		IssuedAt:  parsed.IssuedAt.Time.UTC(),
		ExpiresAt: parsed.ExpiresAt.Time.UTC(),
	}, nil
}

func decodeBase64(value string) ([]byte, error) {
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
