package casevariant

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyAddress returns the P2PKH address of the compressed public key belonging
// to a private key filled with b.
func keyAddress(t *testing.T, b byte, params *chaincfg.Params) string {
	t.Helper()

	_, pub := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{b}, 32))
	addr, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(pub.SerializeCompressed()), params)
	require.NoError(t, err)
	return addr.EncodeAddress()
}

func TestPrunedRecoversAddress(t *testing.T) {
	if testing.Short() {
		t.Skip("pruned search over a full address takes seconds")
	}

	tests := []struct {
		name   string
		key    byte
		params *chaincfg.Params
	}{
		{name: "mainnet", key: 0x01, params: &chaincfg.MainNetParams},
		{name: "testnet", key: 0x2a, params: &chaincfg.TestNet3Params},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address := keyAddress(t, tt.key, tt.params)
			seed := strings.ToLower(address)

			matches, stats := runSearch(t, seed, Config{Strategy: StrategyPruned})
			assert.Equal(t, uint64(len(matches)), stats.Found)

			var found bool
			for _, m := range matches {
				got := Validator{DecodedLen: 25}.Check(m.Address)
				assert.Equal(t, Valid, got.Outcome)
				assert.True(t, strings.EqualFold(seed, m.Address))
				if m.Address == address {
					found = true
					assert.Equal(t, tt.params.PubKeyHashAddrID, m.Version)
				}
			}
			assert.True(t, found, "%s not recovered from %s", address, seed)
		})
	}
}

func TestPrunedHistoricalSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("pruned search over a full address takes seconds")
	}

	matches, _ := runSearch(t, historicalSeed, Config{Strategy: StrategyPruned})
	require.Len(t, matches, 1)

	m := matches[0]
	assert.True(t, strings.EqualFold(historicalSeed, m.Address))
	assert.Equal(t, Valid, Validate(m.Address))
	assert.Equal(t, byte(0x00), m.Version)

	got, err := Reencode(m.Address)
	require.NoError(t, err)
	assert.Equal(t, m.Address, got)
}

func TestExhaustiveHistoricalSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search over 2^26 variants")
	}

	pruned, _ := runSearch(t, historicalSeed, Config{Strategy: StrategyPruned})
	exhaustive, stats := runSearch(t, historicalSeed, Config{
		Validator: Validator{DecodedLen: 25},
	})
	assert.Equal(t, uint64(1)<<26, stats.Candidates)
	assert.Equal(t, pruned, exhaustive)
}

func TestPrunedIgnoresShortPayloads(t *testing.T) {
	seed := "1ab9cz"
	matches, _ := runSearch(t, seed, Config{Strategy: StrategyPruned})
	assert.Empty(t, matches)
}
