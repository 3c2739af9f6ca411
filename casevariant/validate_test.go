package casevariant

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genesisAddress is the pay-to-pubkey-hash address of the genesis block
// coinbase.
const genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		validator Validator
		outcome   Outcome
		reason    Reason
	}{
		{
			name:      "valid address",
			candidate: genesisAddress,
			outcome:   Valid,
			reason:    ReasonNone,
		},
		{
			name:      "valid address with decoded length",
			candidate: genesisAddress,
			validator: Validator{DecodedLen: 25},
			outcome:   Valid,
			reason:    ReasonNone,
		},
		{
			name:      "wrong decoded length",
			candidate: genesisAddress,
			validator: Validator{DecodedLen: 26},
			outcome:   Invalid,
			reason:    ReasonLength,
		},
		{
			name:      "short payload with decoded length",
			candidate: base58.CheckEncode([]byte{0x01}, 0x00),
			validator: Validator{DecodedLen: 25},
			outcome:   Invalid,
			reason:    ReasonLength,
		},
		{
			name:      "short payload",
			candidate: base58.CheckEncode([]byte{0x01}, 0x00),
			outcome:   Valid,
			reason:    ReasonNone,
		},
		{
			name:      "checksum mismatch",
			candidate: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb",
			outcome:   Invalid,
			reason:    ReasonChecksum,
		},
		{
			name:      "lowercased address",
			candidate: "1a1zp1ep5qgefi2dmptftl5slmv7divfna",
			outcome:   Invalid,
			reason:    ReasonDecode,
		},
		{
			name:      "zero digit",
			candidate: "0A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			outcome:   Invalid,
			reason:    ReasonDecode,
		},
		{
			name:      "too short",
			candidate: "1",
			outcome:   Invalid,
			reason:    ReasonDecode,
		},
		{
			name:      "empty",
			candidate: "",
			outcome:   Invalid,
			reason:    ReasonDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.validator.Check(tt.candidate)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestCheckVersion(t *testing.T) {
	got := Check(genesisAddress)
	assert.Equal(t, byte(0x00), got.Version)

	p2sh := base58.CheckEncode(make([]byte, 20), 0x05)
	got = Check(p2sh)
	require.Equal(t, Valid, got.Outcome)
	assert.Equal(t, byte(0x05), got.Version)
}

func TestValidateIsPure(t *testing.T) {
	for _, candidate := range []string{genesisAddress, "1a1zp1ep5qgefi2dmptftl5slmv7divfna"} {
		first := Validate(candidate)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Validate(candidate))
		}
	}
}

func TestReencode(t *testing.T) {
	got, err := Reencode(genesisAddress)
	require.NoError(t, err)
	assert.Equal(t, genesisAddress, got)

	leadingZeros := base58.CheckEncode([]byte{0x00, 0x00, 0x07}, 0x00)
	got, err = Reencode(leadingZeros)
	require.NoError(t, err)
	assert.Equal(t, leadingZeros, got)

	_, err = Reencode("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb")
	assert.ErrorIs(t, err, base58.ErrChecksum)
}

func TestOutcomeAndReasonStrings(t *testing.T) {
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "checksum mismatch", ReasonChecksum.String())
	assert.Equal(t, "unknown", Reason(42).String())
}
