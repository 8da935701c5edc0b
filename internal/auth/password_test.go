package auth

import "testing"

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1", 0)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals plaintext")
	}
	if hash == "" {
		t.Fatal("empty hash")
	}
}

func TestComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !ComparePassword(hash, "secret1") {
		t.Fatal("correct password rejected")
	}
	if ComparePassword(hash, "secret2") {
		t.Fatal("wrong password accepted")
	}
	if ComparePassword(hash, "") {
		t.Fatal("empty password accepted")
	}
}
