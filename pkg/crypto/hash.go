// Package crypto provides cryptographic primitives for keysplit.
package crypto

import (
	"crypto/sha256"

	"github.com/keysplit-tech/keysplit-core/pkg/types"
	"golang.org/x/crypto/sha3"
)

// SHA256 computes a single-round SHA-256 hash of the input data.
func SHA256(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// Keccak256 computes a Keccak-256 hash of the input data.
// This is the original Keccak padding, not the later-standardized SHA3-256;
// Ethereum addresses depend on the distinction.
func Keccak256(data []byte) types.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out types.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// AddressFromPubKey derives an account address from an uncompressed
// 65-byte secp256k1 public key.
// Address = last 20 bytes of Keccak256(pubkey without the 0x04 format byte).
func AddressFromPubKey(uncompressed []byte) types.Address {
	digest := Keccak256(uncompressed[1:])
	var addr types.Address
	copy(addr[:], digest[types.HashSize-types.AddressSize:])
	return addr
}
