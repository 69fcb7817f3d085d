package service

import (
	"context"
	"fmt"

	"github.com/pkruglov/chainvault-go/internal/adapter"
	"github.com/pkruglov/chainvault-go/internal/utils"
	"github.com/pkruglov/chainvault-go/models"
)

type webhookService struct {
	adapter adapter.ChainVaultAdapter
	uuid    *utils.UUIDGenerator
}

// NewWebhookService constructs a [WebhookService] over the given adapter.
func NewWebhookService(ad adapter.ChainVaultAdapter) WebhookService {
	return &webhookService{adapter: ad, uuid: utils.NewUUIDGenerator()}
}

// Register implements [WebhookService].
func (w *webhookService) Register(ctx context.Context, req models.RegisterWebhookRequest) (models.Webhook, error) {
	if !req.Chain.Valid() {
		return models.Webhook{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, req.Chain)
	}
	if req.ClientRef == "" {
		req.ClientRef = w.uuid.Generate()
	}

	webhook, err := w.adapter.RegisterWebhook(ctx, req)
	if err != nil {
		return models.Webhook{}, fmt.Errorf("register webhook: %w", err)
	}
	return webhook, nil
}

// List implements [WebhookService].
func (w *webhookService) List(ctx context.Context) ([]models.Webhook, error) {
	webhooks, err := w.adapter.ListWebhooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}
	return webhooks, nil
}

// Delete implements [WebhookService].
func (w *webhookService) Delete(ctx context.Context, webhookID string) error {
	if err := w.adapter.DeleteWebhook(ctx, webhookID); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}
