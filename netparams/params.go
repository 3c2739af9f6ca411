package netparams

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Address kinds reported by AddressKind.
const (
	KindPubKeyHash = "p2pkh"
	KindScriptHash = "p2sh"
	KindWIF        = "wif"
	KindUnknown    = "unknown"
)

// Params wraps the chain parameters a recovered string is classified against.
type Params struct {
	*chaincfg.Params
}

var MainNetParams = Params{
	Params: &chaincfg.MainNetParams,
}

var TestNetParams = Params{
	Params: &chaincfg.TestNet3Params,
}

var RegressionNetParams = Params{
	Params: &chaincfg.RegressionNetParams,
}

var SimNetParams = Params{
	Params: &chaincfg.SimNetParams,
}

var SigNetParams = Params{
	Params: &chaincfg.SigNetParams,
}

var byName = map[string]*Params{
	"mainnet":  &MainNetParams,
	"testnet":  &TestNetParams,
	"testnet3": &TestNetParams,
	"regtest":  &RegressionNetParams,
	"simnet":   &SimNetParams,
	"signet":   &SigNetParams,
}

// ByName returns the parameters of the named network.
func ByName(name string) (*Params, error) {
	p, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown network %q", name)
	}
	return p, nil
}

// AddressKind returns what a base58check string with the given version byte
// encodes on this network.
func (p *Params) AddressKind(version byte) string {
	switch version {
	case p.PubKeyHashAddrID:
		return KindPubKeyHash
	case p.ScriptHashAddrID:
		return KindScriptHash
	case p.PrivateKeyID:
		return KindWIF
	default:
		return KindUnknown
	}
}
