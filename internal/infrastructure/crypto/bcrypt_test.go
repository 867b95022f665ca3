package crypto

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/arleti/materials-system/internal/core/domain"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "" || hash == "secret1" {
		t.Fatalf("expected encoded hash, got %q", hash)
	}

	ok, err := hasher.Verify("secret1", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("correct password did not verify")
	}

	ok, err = hasher.Verify("not-the-password", hash)
	if err != nil {
		t.Fatalf("Verify returned error for mismatch: %v", err)
	}
	if ok {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_SaltIsRandomized(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password are identical")
	}

	for _, h := range []string{first, second} {
		ok, err := hasher.Verify("secret1", h)
		if err != nil || !ok {
			t.Fatalf("hash %q did not verify: ok=%v err=%v", h, ok, err)
		}
	}
}

func TestBcryptHasher_CorruptHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	ok, err := hasher.Verify("secret1", "not-a-bcrypt-hash")
	if ok {
		t.Fatalf("corrupt hash verified")
	}
	if !errors.Is(err, domain.ErrCorruptCredential) {
		t.Fatalf("expected ErrCorruptCredential, got %v", err)
	}
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(-1)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost returned error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
