package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/keysplit-tech/keysplit-core/pkg/types"
)

func hexToHash(t *testing.T, s string) types.Hash {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	var h types.Hash
	copy(h[:], b)
	return h
}

func TestSHA256(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "abc",
			input: []byte("abc"),
			want:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SHA256(tt.input)
			want := hexToHash(t, tt.want)
			if got != want {
				t.Errorf("SHA256(%q) = %x, want %x", tt.input, got, want)
			}
		})
	}
}

func TestKeccak256(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			name:  "abc",
			input: []byte("abc"),
			want:  "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keccak256(tt.input)
			want := hexToHash(t, tt.want)
			if got != want {
				t.Errorf("Keccak256(%q) = %x, want %x", tt.input, got, want)
			}
		})
	}
}

func TestKeccak256_NotSHA3(t *testing.T) {
	// SHA3-256("") uses different padding and must NOT match.
	sha3Empty := hexToHash(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	if Keccak256(nil) == sha3Empty {
		t.Error("Keccak256 must use original Keccak padding, not SHA3-256")
	}
}

func TestHashes_Deterministic(t *testing.T) {
	data := []byte("deterministic test input")
	if SHA256(data) != SHA256(data) {
		t.Error("SHA256 is not deterministic")
	}
	if Keccak256(data) != Keccak256(data) {
		t.Error("Keccak256 is not deterministic")
	}
}

func TestAddressFromPubKey(t *testing.T) {
	// Widely published development key (hardhat account #0):
	// this private key's address is 0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266.
	keyBytes, err := hex.DecodeString("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	key, err := PrivateKeyFromBytes(keyBytes)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}

	addr := AddressFromPubKey(key.PublicKeyUncompressed())
	if addr.Hex() != "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266" {
		t.Errorf("address = %s, want 0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", addr.Hex())
	}
}
