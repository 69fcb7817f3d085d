package service

import (
	"context"
	"fmt"

	"github.com/pkruglov/chainvault-go/internal/adapter"
	"github.com/pkruglov/chainvault-go/models"
)

type marketService struct {
	adapter adapter.ChainVaultAdapter
}

// NewMarketService constructs a [MarketService] over the given adapter.
func NewMarketService(ad adapter.ChainVaultAdapter) MarketService {
	return &marketService{adapter: ad}
}

// Price implements [MarketService].
func (m *marketService) Price(ctx context.Context, chain models.Chain, fiat string) (models.Price, error) {
	if !chain.Valid() {
		return models.Price{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, chain)
	}

	price, err := m.adapter.GetPrice(ctx, chain, fiat)
	if err != nil {
		return models.Price{}, fmt.Errorf("get price: %w", err)
	}
	return price, nil
}

// ValidateAddress implements [MarketService].
func (m *marketService) ValidateAddress(ctx context.Context, chain models.Chain, address string) (models.AddressValidation, error) {
	if !chain.Valid() {
		return models.AddressValidation{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, chain)
	}

	validation, err := m.adapter.ValidateAddress(ctx, models.ValidateAddressRequest{Chain: chain, Address: address})
	if err != nil {
		return models.AddressValidation{}, fmt.Errorf("validate address: %w", err)
	}
	return validation, nil
}
