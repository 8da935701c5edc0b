package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWT_SignVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	j := NewJWT("super-secret", time.Hour)
	u := &User{ID: 42, Email: "jo@example.com", Name: "Jo Lee"}

	tok, err := j.Sign(u)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	ident, err := j.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ident.ID != 42 || ident.Email != "jo@example.com" || ident.Name != "Jo Lee" {
		t.Fatalf("identity mismatch: %+v", ident)
	}
}

func TestJWT_Verify_Expired(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", -time.Second)
	tok, err := j.Sign(&User{ID: 1, Email: "a@b.c", Name: "A"})
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := j.Verify(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestJWT_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWT("right-secret", time.Hour).Sign(&User{ID: 1, Email: "a@b.c", Name: "A"})
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := NewJWT("wrong-secret", time.Hour).Verify(tok); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestJWT_Verify_Malformed(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := j.Verify(tok); err == nil {
			t.Fatalf("expected error for %q, got nil", tok)
		}
	}
}

func TestJWT_Verify_RejectsOtherAlg(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	c := claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString(secret)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := NewJWT("secret", time.Hour).Verify(tok); err == nil {
		t.Fatal("expected error for non-HS256 token, got nil")
	}
}
