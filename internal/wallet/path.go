package wallet

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedKeyStart is the first hardened child index (2^31).
const HardenedKeyStart uint32 = 0x80000000

// BIP-44 path constants for the fixed template m/44'/60'/0'/0/{index}.
const (
	// PurposeBIP44 is the BIP-44 purpose field (hardened).
	PurposeBIP44 = HardenedKeyStart + 44

	// CoinTypeEthereum is the registered Ethereum coin type (hardened).
	CoinTypeEthereum = HardenedKeyStart + 60

	// AccountDefault is the account field (hardened).
	AccountDefault = HardenedKeyStart + 0

	// ChangeExternal is the external (receiving) chain. Non-hardened per
	// BIP-44, as is the trailing address index, so public-only derivation
	// below the account level stays possible.
	ChangeExternal uint32 = 0
)

// DerivationPath is a sequence of child indices walked from the master key.
// Indices at or above HardenedKeyStart are hardened.
type DerivationPath []uint32

// String renders the path in conventional form, e.g. "m/44'/60'/0'/0/5".
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range p {
		if idx >= HardenedKeyStart {
			fmt.Fprintf(&b, "/%d'", idx-HardenedKeyStart)
		} else {
			fmt.Fprintf(&b, "/%d", idx)
		}
	}
	return b.String()
}

// ParseDerivationPath parses a path string like "m/44'/60'/0'/0/5".
// A trailing apostrophe marks a hardened segment. Any malformed input
// returns an error wrapping ErrInvalidPath.
func ParseDerivationPath(s string) (DerivationPath, error) {
	parts := strings.Split(s, "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("%w: must start with \"m\"", ErrInvalidPath)
	}
	path := make(DerivationPath, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		if strings.HasSuffix(part, "'") {
			hardened = true
			part = strings.TrimSuffix(part, "'")
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad segment %q", ErrInvalidPath, part)
		}
		if idx >= uint64(HardenedKeyStart) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidPath, idx)
		}
		if hardened {
			idx += uint64(HardenedKeyStart)
		}
		path = append(path, uint32(idx))
	}
	return path, nil
}

// PathForIndex returns the fixed account path m/44'/60'/0'/0/{index}.
// The template goes through the parser so a corrupted template surfaces
// as ErrInvalidPath instead of deriving the wrong key.
func PathForIndex(index uint32) (DerivationPath, error) {
	return ParseDerivationPath(fmt.Sprintf("m/44'/60'/0'/0/%d", index))
}
