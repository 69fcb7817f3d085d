package models

import "time"

// Price is a fiat price quote for one coin, as returned by
// GET /api/v1/market/price. Price is a decimal string.
type Price struct {
	Chain Chain     `json:"chain"`
	Fiat  string    `json:"fiat"`
	Price string    `json:"price"`
	AsOf  time.Time `json:"as_of"`
}

// AddressValidation is the result of POST /api/v1/address/validate.
type AddressValidation struct {
	Chain   Chain  `json:"chain"`
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
}

// ValidateAddressRequest is the body of POST /api/v1/address/validate.
type ValidateAddressRequest struct {
	Chain   Chain  `json:"chain"`
	Address string `json:"address"`
}
