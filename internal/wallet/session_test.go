package wallet

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testSessions(t *testing.T, now func() time.Time) *Sessions {
	t.Helper()
	sessions, err := NewSessions(SessionConfig{
		Issuer: "sanbase-test",
		Secret: []byte(strings.Repeat("k", 32)),
		TTL:    time.Hour,
		Now:    now,
	})
	if err != nil {
		t.Fatalf("NewSessions() error = %v", err)
	}
	return sessions
}

func TestSessionsIssueAndVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2018, 1, 8, 12, 0, 0, 0, time.UTC)
	sessions := testSessions(t, func() time.Time { return now })

	token, issued, err := sessions.Issue("0xABCDEF0123456789abcdef0123456789abcdef01")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if issued.Account != testAccount || !issued.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("Issue() session = %+v", issued)
	}
	got, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got.Account != issued.Account || !got.IssuedAt.Equal(issued.IssuedAt) || !got.ExpiresAt.Equal(issued.ExpiresAt) {
		t.Fatalf("Verify() = %+v, want %+v", got, issued)
	}
}

func TestSessionsRejectExpiredToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2018, 1, 8, 12, 0, 0, 0, time.UTC)
	clock := now
	sessions := testSessions(t, func() time.Time { return clock })
	token, _, err := sessions.Issue(testAccount)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	clock = now.Add(time.Hour)
	if _, err := sessions.Verify(token); !errors.Is(err, ErrExpiredSession) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrExpiredSession)
	}
}

func TestSessionsRejectTamperedToken(t *testing.T) {
	t.Parallel()

	now := time.Now()
	sessions := testSessions(t, func() time.Time { return now })
	token, _, err := sessions.Issue(testAccount)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	parts := strings.Split(token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	forged := strings.Replace(string(payload), testAccount, "0x0000000000000000000000000000000000000001", 2)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))
	if _, err := sessions.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Verify(tampered) error = %v, want %v", err, ErrInvalidSession)
	}
	if _, err := sessions.Verify(""); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Verify(empty) error = %v, want %v", err, ErrInvalidSession)
	}
}

func TestSessionsRejectForeignIssuerAndAlgorithm(t *testing.T) {
	t.Parallel()

	now := time.Now()
	sessions := testSessions(t, func() time.Time { return now })
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   testAccount,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Account: testAccount,
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(strings.Repeat("k", 32)))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := sessions.Verify(foreign); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Verify(foreign issuer) error = %v", err)
	}

	claims.Issuer = "sanbase-test"
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := sessions.Verify(unsigned); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Verify(alg none) error = %v", err)
	}
}

func TestNewSessionsRequiresLongSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewSessions(SessionConfig{Secret: []byte("short")}); err == nil {
		t.Fatal("expected short secret error")
	}
}

func TestLoadSessionConfigFromEnv(t *testing.T) {
	secret := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("s", 32)))
	t.Setenv("SANBASE_SESSION_SECRET", secret)
	t.Setenv("SANBASE_SESSION_TTL", "2h")

	cfg, generated, err := LoadSessionConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("LoadSessionConfigFromEnv() error = %v", err)
	}
	if generated {
		t.Fatal("expected configured secret")
	}
	if string(cfg.Secret) != strings.Repeat("s", 32) || cfg.TTL != 2*time.Hour || cfg.Issuer != DefaultIssuer {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadSessionConfigFromEnvGeneratesSecret(t *testing.T) {
	t.Setenv("SANBASE_SESSION_SECRET", "")

	cfg, generated, err := LoadSessionConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("LoadSessionConfigFromEnv() error = %v", err)
	}
	if !generated || len(cfg.Secret) != 32 {
		t.Fatalf("generated = %v, secret len = %d", generated, len(cfg.Secret))
	}
}
