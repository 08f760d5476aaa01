package strongname

import (
	"encoding/hex"
	"testing"
)

func TestDeriveToken_KnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		publicKey string // hex
		expected  string
	}{
		{
			name:      "Standard public key",
			publicKey: "00000000000000000400000000000000",
			expected:  "b77a5c561934e089",
		},
		{
			name:      "Empty blob",
			publicKey: "",
			expected:  "0907d8af90186095",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := hex.DecodeString(tt.publicKey)
			if err != nil {
				t.Fatalf("bad test vector: %v", err)
			}

			result := DeriveToken(blob)
			if result != tt.expected {
				t.Errorf("DeriveToken() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestDeriveToken_Shape(t *testing.T) {
	d := New()

	blobs := [][]byte{
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		make([]byte, 160),
	}

	for _, blob := range blobs {
		token := d.DeriveToken(blob)

		if len(token) != TokenLength {
			t.Errorf("DeriveToken() returned token of length %d, expected %d", len(token), TokenLength)
		}
		if _, err := hex.DecodeString(token); err != nil {
			t.Errorf("DeriveToken() returned non-hex token %q: %v", token, err)
		}

		// Verify it's consistent
		if again := d.DeriveToken(blob); again != token {
			t.Errorf("DeriveToken() is not deterministic: %s != %s", token, again)
		}
	}
}
