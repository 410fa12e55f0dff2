package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/keysplit-tech/keysplit-core/pkg/crypto"
	"golang.org/x/crypto/ripemd160"
)

// Seed length bounds accepted by NewMasterKey, per BIP-32.
// The mnemonic pipeline always produces SeedSize (64) bytes.
const (
	MinSeedBytes = 16
	MaxSeedBytes = 64
)

// masterHMACKey is the BIP-32 domain-separation constant for master key
// derivation.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedKey is a BIP-32 extended private key: a secp256k1 private scalar
// plus the chain code and position metadata needed for further derivation.
type ExtendedKey struct {
	key        [32]byte // private scalar, 0 < key < curve order
	chainCode  [32]byte
	depth      uint8
	parentFP   [4]byte
	childIndex uint32
}

// NewMasterKey creates the master extended key from a seed via HMAC-SHA512
// keyed with "Bitcoin seed": the left 32 bytes become the master scalar,
// the right 32 bytes the chain code.
func NewMasterKey(seed []byte) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, fmt.Errorf("seed must be %d-%d bytes, got %d", MinSeedBytes, MaxSeedBytes, len(seed))
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	// A master scalar of zero or beyond the curve order makes the seed
	// unusable. Probability ~2^-127.
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(sum[:32]); overflow || scalar.IsZero() {
		return nil, errors.New("create master key: seed produces an invalid scalar")
	}
	scalar.Zero()

	k := &ExtendedKey{}
	copy(k.key[:], sum[:32])
	copy(k.chainCode[:], sum[32:])
	return k, nil
}

// Child derives the child extended key at the given index. Hardened
// indices (>= HardenedKeyStart) commit to the parent private scalar;
// non-hardened indices commit to the parent compressed public key. The
// child scalar is the HMAC left half added to the parent scalar modulo
// the curve order.
//
// Returns errInvalidChild when the left half is beyond the curve order or
// the child scalar lands on zero; the caller must skip to the next index.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	// 37 bytes: [key material (33)][index (4, big-endian)]
	var data [37]byte
	if index >= HardenedKeyStart {
		// data = 0x00 || parent scalar || index
		copy(data[1:33], k.key[:])
	} else {
		// data = parent compressed pubkey || index
		copy(data[:33], k.publicKey().SerializeCompressed())
	}
	binary.BigEndian.PutUint32(data[33:], index)

	mac := hmac.New(sha512.New, k.chainCode[:])
	mac.Write(data[:])
	sum := mac.Sum(nil)

	var il, parent secp256k1.ModNScalar
	if overflow := il.SetByteSlice(sum[:32]); overflow {
		return nil, errInvalidChild
	}
	parent.SetByteSlice(k.key[:])
	il.Add(&parent)
	parent.Zero()
	if il.IsZero() {
		return nil, errInvalidChild
	}

	child := &ExtendedKey{
		depth:      k.depth + 1,
		childIndex: index,
	}
	il.PutBytes(&child.key)
	il.Zero()
	copy(child.chainCode[:], sum[32:])
	copy(child.parentFP[:], k.fingerprint())
	return child, nil
}

// Derive walks the path from this key, deriving each segment in order.
// When a segment hits the invalid-scalar edge case the next index at the
// same depth is tried, per BIP-32.
func (k *ExtendedKey) Derive(path DerivationPath) (*ExtendedKey, error) {
	current := k
	for _, idx := range path {
		child, err := current.Child(idx)
		for errors.Is(err, errInvalidChild) {
			idx++
			child, err = current.Child(idx)
		}
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// PrivateKeyBytes returns a copy of the raw 32-byte private scalar.
func (k *ExtendedKey) PrivateKeyBytes() []byte {
	b := make([]byte, 32)
	copy(b, k.key[:])
	return b
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *ExtendedKey) PublicKeyBytes() []byte {
	return k.publicKey().SerializeCompressed()
}

// ChainCodeBytes returns a copy of the 32-byte chain code.
func (k *ExtendedKey) ChainCodeBytes() []byte {
	b := make([]byte, 32)
	copy(b, k.chainCode[:])
	return b
}

// Depth returns the derivation depth (0 for master).
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ChildIndex returns the index this key was derived at (0 for master).
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childIndex
}

// ParentFingerprint returns the first 4 bytes of the parent public key's
// HASH160 (zero for master).
func (k *ExtendedKey) ParentFingerprint() [4]byte {
	return k.parentFP
}

// PrivateKey returns this key's scalar wrapped as a crypto.PrivateKey.
func (k *ExtendedKey) PrivateKey() (*crypto.PrivateKey, error) {
	return crypto.PrivateKeyFromBytes(k.key[:])
}

// publicKey computes the secp256k1 public point for this key's scalar.
func (k *ExtendedKey) publicKey() *secp256k1.PublicKey {
	priv := secp256k1.PrivKeyFromBytes(k.key[:])
	defer priv.Zero()
	return priv.PubKey()
}

// fingerprint is the first 4 bytes of HASH160 (SHA-256 then RIPEMD-160)
// of this key's compressed public key.
func (k *ExtendedKey) fingerprint() []byte {
	sha := crypto.SHA256(k.publicKey().SerializeCompressed())
	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)[:4]
}
