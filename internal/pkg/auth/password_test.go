package auth

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatal("expected password to verify")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("expected wrong password to fail")
	}
}
