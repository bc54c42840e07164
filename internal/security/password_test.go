package security

import (
	"bytes"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-pass", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if bytes.Contains(hash, []byte("s3cret-pass")) {
		t.Fatalf("hash contains plaintext")
	}

	if !VerifyPassword("s3cret-pass", hash) {
		t.Fatalf("correct password did not verify")
	}
	if VerifyPassword("wrong-pass", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestVerifyPassword_NotAHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("anything", []byte("not a bcrypt hash")) {
		t.Fatalf("garbage hash verified")
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !VerifyPassword("pw", hash) {
		t.Fatalf("default-cost hash did not verify")
	}
}
