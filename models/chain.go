package models

// Chain identifies a blockchain network supported by the ChainVault API.
// The string values match the identifiers expected in request bodies and
// query parameters.
type Chain string

const (
	Bitcoin     Chain = "btc"
	BitcoinCash Chain = "bch"
	Litecoin    Chain = "ltc"
	Dogecoin    Chain = "doge"
	Ethereum    Chain = "eth"
	EthClassic  Chain = "etc"
	Tron        Chain = "trx"
	Ripple      Chain = "xrp"
	BNBChain    Chain = "bnb"
)

// SupportedChains lists every chain the remote API currently accepts.
// Used by client-side validation before a request is built.
var SupportedChains = []Chain{
	Bitcoin, BitcoinCash, Litecoin, Dogecoin,
	Ethereum, EthClassic, Tron, Ripple, BNBChain,
}

// Valid reports whether c is one of the supported chain identifiers.
func (c Chain) Valid() bool {
	for _, s := range SupportedChains {
		if c == s {
			return true
		}
	}
	return false
}
