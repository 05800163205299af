package vault

import (
	"errors"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	v, err := New("test-secret")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	tests := []string{
		`{"username":"ada","password":"hunter2"}`,
		"",
		"short",
	}
	for _, plaintext := range tests {
		ciphertext, err := v.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("encrypt %q: %v", plaintext, err)
		}
		if ciphertext == plaintext {
			t.Errorf("ciphertext equals plaintext for %q", plaintext)
		}
		got, err := v.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if got != plaintext {
			t.Errorf("round trip = %q, want %q", got, plaintext)
		}
	}
}

func TestEncryptIsRandomized(t *testing.T) {
	v, err := New("test-secret")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a, _ := v.Encrypt("same input")
	b, _ := v.Encrypt("same input")
	if a == b {
		t.Error("two encryptions of the same input produced identical ciphertext")
	}
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrKeyRequired) {
		t.Errorf("err = %v, want ErrKeyRequired", err)
	}
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	v1, _ := New("key-one")
	v2, _ := New("key-two")

	ciphertext, err := v1.Encrypt("secret payload")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := v2.Decrypt(ciphertext); err == nil {
		t.Error("decrypt under a different key succeeded")
	}
}

func TestDecryptRejectsGarbage(t *testing.T) {
	v, _ := New("test-secret")

	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"too short", "YWJj"},
		{"tampered", func() string {
			c, _ := v.Encrypt("payload")
			b := []byte(c)
			b[len(b)-5] ^= 1
			return string(b)
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.Decrypt(tt.input); err == nil {
				t.Error("decrypt succeeded on invalid input")
			}
		})
	}
}
