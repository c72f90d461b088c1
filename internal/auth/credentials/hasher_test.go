package credentials

import "testing"

func TestDigestVerifiesAgainstPlaintext(t *testing.T) {
	digest, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if digest == "hunter2" {
		t.Fatal("digest must never equal the plaintext")
	}
	if err := VerifyPassword(digest, "hunter2"); err != nil {
		t.Fatalf("digest does not verify against original plaintext: %v", err)
	}
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	digest, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if err := VerifyPassword(digest, "hunter3"); err == nil {
		t.Fatal("wrong password must not verify")
	}
}

func TestDigestsAreSalted(t *testing.T) {
	a, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	b, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if a == b {
		t.Fatal("two digests of the same password must differ")
	}
}
