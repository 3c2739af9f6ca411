package netparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    *Params
		wantErr bool
	}{
		{name: "mainnet", want: &MainNetParams},
		{name: "TestNet", want: &TestNetParams},
		{name: "testnet3", want: &TestNetParams},
		{name: "regtest", want: &RegressionNetParams},
		{name: "simnet", want: &SimNetParams},
		{name: "signet", want: &SigNetParams},
		{name: "litecoin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestAddressKind(t *testing.T) {
	assert.Equal(t, KindPubKeyHash, MainNetParams.AddressKind(0x00))
	assert.Equal(t, KindScriptHash, MainNetParams.AddressKind(0x05))
	assert.Equal(t, KindWIF, MainNetParams.AddressKind(0x80))
	assert.Equal(t, KindUnknown, MainNetParams.AddressKind(0x42))

	assert.Equal(t, KindPubKeyHash, TestNetParams.AddressKind(0x6f))
	assert.Equal(t, KindScriptHash, TestNetParams.AddressKind(0xc4))
}
