package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// AddressPrefix is the textual prefix carried by every rendered address.
const AddressPrefix = "0x"

// Address represents a 160-bit account address (public key hash).
type Address [AddressSize]byte

// IsZero returns true if the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Hex returns the "0x"-prefixed lowercase hex encoding of the address.
func (a Address) Hex() string {
	return AddressPrefix + hex.EncodeToString(a[:])
}

// String returns the hex-encoded address (e.g. "0xf39f...").
func (a Address) String() string {
	return a.Hex()
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// MarshalJSON encodes the address as a "0x"-prefixed hex string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Hex())
}

// UnmarshalJSON decodes a hex string (with or without "0x") into an address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*a = Address{}
		return nil
	}
	parsed, err := HexToAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// HexToAddress converts a hex string to an Address.
// The "0x" prefix is optional; the payload must be exactly 40 hex characters.
func HexToAddress(s string) (Address, error) {
	hexStr := strings.TrimPrefix(strings.ToLower(s), AddressPrefix)
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
