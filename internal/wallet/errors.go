package wallet

import "errors"

// Failure kinds surfaced by this package. Callers branch on these with
// errors.Is instead of matching message text.
var (
	// ErrInvalidMnemonic reports a phrase that fails word-list or checksum
	// validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidPath reports a derivation path string that cannot be parsed.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrRandomSource reports that the secure random source could not
	// supply entropy.
	ErrRandomSource = errors.New("random source failure")
)

// errInvalidChild reports a derived scalar of zero or beyond the curve
// order. Per BIP-32 the index is skipped and the next one tried; this
// never escapes the package.
var errInvalidChild = errors.New("invalid child key")
