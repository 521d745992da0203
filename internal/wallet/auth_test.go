package wallet

import (
	"context"
	"errors"
	"testing"
)

const testAccount = "0xabcdef0123456789abcdef0123456789abcdef01"

func TestCredentialsValidate(t *testing.T) {
	t.Parallel()

	creds, err := Credentials{Account: "0xABCDEF0123456789abcdef0123456789abcdef01", Signature: " 0xsig "}.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if creds.Account != testAccount || creds.Signature != "0xsig" {
		t.Fatalf("Validate() = %+v", creds)
	}
	if _, err := (Credentials{Account: testAccount}).Validate(); !errors.Is(err, ErrMissingSignature) {
		t.Fatalf("missing signature error = %v", err)
	}
	if _, err := (Credentials{Account: "nope", Signature: "x"}).Validate(); !errors.Is(err, ErrInvalidAccount) {
		t.Fatalf("invalid account error = %v", err)
	}
}

func TestUnavailableRefusesEverything(t *testing.T) {
	t.Parallel()

	if err := Unavailable.Authenticate(context.Background(), Credentials{Account: testAccount, Signature: "x"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Authenticate() error = %v, want %v", err, ErrUnavailable)
	}
}

func TestAllowList(t *testing.T) {
	t.Parallel()

	auth, err := AllowList("0xABCDEF0123456789ABCDEF0123456789ABCDEF01", "")
	if err != nil {
		t.Fatalf("AllowList() error = %v", err)
	}
	if err := auth.Authenticate(context.Background(), Credentials{Account: testAccount, Signature: "x"}); err != nil {
		t.Fatalf("allowed account error = %v", err)
	}
	other := "0x0000000000000000000000000000000000000001"
	if err := auth.Authenticate(context.Background(), Credentials{Account: other, Signature: "x"}); !errors.Is(err, ErrRejected) {
		t.Fatalf("other account error = %v, want %v", err, ErrRejected)
	}

	empty, err := AllowList()
	if err != nil {
		t.Fatalf("AllowList() error = %v", err)
	}
	if empty != Unavailable {
		t.Fatal("expected empty allow list to be Unavailable")
	}
	if _, err := AllowList("bogus"); err == nil {
		t.Fatal("expected invalid account error")
	}
}
