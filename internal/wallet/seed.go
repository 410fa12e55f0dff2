package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// seedPassphrase is the BIP-39 passphrase, fixed to empty.
// This system has no 25th-word support.
const seedPassphrase = ""

// SeedFromMnemonic derives a 512-bit seed from a mnemonic using
// PBKDF2-SHA512 (2048 rounds, salt "mnemonic") as specified in BIP-39.
// The mnemonic is validated first; an invalid phrase never reaches the
// key-stretching step.
func SeedFromMnemonic(mnemonic string) ([]byte, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, seedPassphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
