package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/keysplit-tech/keysplit-core/pkg/crypto"
)

// SplitChildCount is the fixed number of child wallets produced by a
// split operation.
const SplitChildCount = 100

// WalletInfo is the user-facing record for one derived key pair.
// All fields are lowercase hex; only the address carries a "0x" prefix.
// PrivateKey is 64 hex chars (32-byte scalar), PublicKey is 66 hex chars
// (33-byte compressed point).
type WalletInfo struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

// SplitResult groups a parent wallet with its derived children.
// ChildWallets[0] duplicates ParentWallet by construction: both sit at
// address index 0 of the same path.
type SplitResult struct {
	ParentWallet WalletInfo   `json:"parent_wallet"`
	ChildWallets []WalletInfo `json:"child_wallets"`
}

// DeriveParentWallet derives the wallet at m/44'/60'/0'/0/0.
func DeriveParentWallet(mnemonic string) (WalletInfo, error) {
	seed, err := SeedFromMnemonic(mnemonic)
	if err != nil {
		return WalletInfo{}, err
	}
	master, err := NewMasterKey(seed)
	if err != nil {
		return WalletInfo{}, fmt.Errorf("derive master key: %w", err)
	}
	return deriveAtIndex(master, 0)
}

// DeriveChildWallets derives count wallets at m/44'/60'/0'/0/{0..count-1}.
// The seed is computed once; every index independently re-walks the full
// path from the master key, so each wallet can be checked against an
// isolated derivation of the same index.
func DeriveChildWallets(mnemonic string, count uint32) ([]WalletInfo, error) {
	seed, err := SeedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}

	wallets := make([]WalletInfo, 0, count)
	for i := uint32(0); i < count; i++ {
		w, err := deriveAtIndex(master, i)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

// CreateSplitOperation derives the parent wallet plus SplitChildCount
// children from the same phrase.
func CreateSplitOperation(mnemonic string) (*SplitResult, error) {
	parent, err := DeriveParentWallet(mnemonic)
	if err != nil {
		return nil, err
	}
	children, err := DeriveChildWallets(mnemonic, SplitChildCount)
	if err != nil {
		return nil, err
	}
	return &SplitResult{
		ParentWallet: parent,
		ChildWallets: children,
	}, nil
}

// deriveAtIndex walks the fixed path from the master key and assembles the
// wallet record for one address index.
func deriveAtIndex(master *ExtendedKey, index uint32) (WalletInfo, error) {
	path, err := PathForIndex(index)
	if err != nil {
		return WalletInfo{}, err
	}
	child, err := master.Derive(path)
	if err != nil {
		return WalletInfo{}, fmt.Errorf("derive %s: %w", path, err)
	}
	key, err := child.PrivateKey()
	if err != nil {
		return WalletInfo{}, fmt.Errorf("derive %s: %w", path, err)
	}
	defer key.Zero()

	addr := crypto.AddressFromPubKey(key.PublicKeyUncompressed())
	return WalletInfo{
		Address:    addr.Hex(),
		PrivateKey: hex.EncodeToString(key.Serialize()),
		PublicKey:  hex.EncodeToString(key.PublicKey()),
	}, nil
}
