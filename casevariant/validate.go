package casevariant

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// checksumLen is the number of double-SHA256 bytes appended to the payload.
const checksumLen = 4

// Outcome is the classification of a candidate.
type Outcome uint8

const (
	// Invalid means the candidate does not decode to a checksummed string.
	Invalid Outcome = iota

	// Valid means the candidate decodes and its checksum matches.
	Valid
)

// String returns the outcome as a human-readable name.
func (o Outcome) String() string {
	if o == Valid {
		return "valid"
	}
	return "invalid"
}

// Reason explains why a candidate was classified Invalid.
type Reason uint8

const (
	// ReasonNone is reported for valid candidates.
	ReasonNone Reason = iota

	// ReasonDecode means the candidate holds a character outside the
	// base-58 alphabet or decodes to fewer bytes than a version byte and a
	// checksum need.
	ReasonDecode

	// ReasonChecksum means the candidate decodes but its checksum does not
	// match the payload.
	ReasonChecksum

	// ReasonLength means the candidate decodes with a matching checksum but
	// to a length other than the one the Validator requires.
	ReasonLength
)

var reasonStrings = map[Reason]string{
	ReasonNone:     "none",
	ReasonDecode:   "decode error",
	ReasonChecksum: "checksum mismatch",
	ReasonLength:   "length mismatch",
}

// String returns the reason as a human-readable phrase.
func (r Reason) String() string {
	if s, ok := reasonStrings[r]; ok {
		return s
	}
	return "unknown"
}

// Result is the detailed classification of a candidate.
type Result struct {
	Outcome Outcome
	Reason  Reason

	// Version is the leading byte of the decoded string. It is only
	// meaningful when Outcome is Valid.
	Version byte
}

// Validator classifies candidates. The zero value accepts any decoded length.
type Validator struct {
	// DecodedLen, when non-zero, is the exact number of bytes (version,
	// payload and checksum) a candidate must decode to. Standard P2PKH and
	// P2SH addresses decode to 25 bytes.
	DecodedLen int
}

// Check decodes candidate and verifies its checksum. Decode failures are
// reported through the Result and never as an error.
func (v Validator) Check(candidate string) Result {
	payload, version, err := base58.CheckDecode(candidate)
	switch {
	case errors.Is(err, base58.ErrChecksum):
		return Result{Outcome: Invalid, Reason: ReasonChecksum}
	case err != nil:
		return Result{Outcome: Invalid, Reason: ReasonDecode}
	}

	if v.DecodedLen > 0 && len(payload)+1+checksumLen != v.DecodedLen {
		return Result{Outcome: Invalid, Reason: ReasonLength}
	}
	return Result{Outcome: Valid, Reason: ReasonNone, Version: version}
}

// Validate reports whether candidate is a valid base58check string of any
// length.
func Validate(candidate string) Outcome {
	return Validator{}.Check(candidate).Outcome
}

// Check is Validator{}.Check.
func Check(candidate string) Result {
	return Validator{}.Check(candidate)
}

// Reencode decodes candidate, drops its checksum and encodes the payload again
// with a freshly computed checksum. For a valid candidate the result is the
// candidate itself.
func Reencode(candidate string) (string, error) {
	payload, version, err := base58.CheckDecode(candidate)
	if err != nil {
		return "", err
	}
	return base58.CheckEncode(payload, version), nil
}
