// Package wallet implements BIP-39 mnemonic handling and BIP-32/BIP-44
// hierarchical deterministic key derivation for Ethereum-style accounts.
package wallet

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the entropy size for 24-word mnemonics.
const MnemonicEntropyBits = 256

// GenerateMnemonic creates a new 24-word BIP-39 mnemonic from the
// operating system's secure random source.
func GenerateMnemonic() (string, error) {
	return GenerateMnemonicFrom(rand.Reader)
}

// GenerateMnemonicFrom creates a 24-word BIP-39 mnemonic drawing entropy
// from the given reader. The reader must supply cryptographically secure
// randomness; it is a parameter so tests can substitute a deterministic
// source.
func GenerateMnemonicFrom(entropy io.Reader) (string, error) {
	buf := make([]byte, MnemonicEntropyBits/8)
	if _, err := io.ReadFull(entropy, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	mnemonic, err := bip39.NewMnemonic(buf)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
