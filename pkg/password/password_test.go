package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("marie2025")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "marie2025" {
		t.Fatal("hash equals the plaintext")
	}

	if !Verify("marie2025", hash) {
		t.Error("Verify rejected the correct password")
	}
	if Verify("wrong", hash) {
		t.Error("Verify accepted a wrong password")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := Hash(""); err == nil {
		t.Error("expected an error for an empty password")
	}
}
