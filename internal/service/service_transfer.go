package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkruglov/chainvault-go/internal/adapter"
	"github.com/pkruglov/chainvault-go/internal/logger"
	"github.com/pkruglov/chainvault-go/internal/utils"
	"github.com/pkruglov/chainvault-go/models"
)

type transferService struct {
	adapter adapter.ChainVaultAdapter
	uuid    *utils.UUIDGenerator
	logger  *logger.Logger

	mu      sync.Mutex
	pending map[string]models.Transfer
}

// NewTransferService constructs a [TransferService] over the given adapter.
func NewTransferService(ad adapter.ChainVaultAdapter, log *logger.Logger) TransferService {
	return &transferService{
		adapter: ad,
		uuid:    utils.NewUUIDGenerator(),
		logger:  log,
		pending: make(map[string]models.Transfer),
	}
}

// Send implements [TransferService].
func (t *transferService) Send(ctx context.Context, req models.TransferRequest) (models.Transfer, error) {
	if !req.Chain.Valid() {
		return models.Transfer{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, req.Chain)
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = t.uuid.Generate()
	}

	transfer, err := t.adapter.SendTransfer(ctx, req)
	if err != nil {
		return models.Transfer{}, fmt.Errorf("send transfer: %w", err)
	}

	if !transfer.Status.Final() {
		t.mu.Lock()
		t.pending[transfer.TransferID] = transfer
		t.mu.Unlock()
	}

	t.logger.Info().
		Str("chain", string(req.Chain)).
		Str("transfer_id", transfer.TransferID).
		Str("status", string(transfer.Status)).
		Msg("transfer submitted")
	return transfer, nil
}

// Refresh implements [TransferService]. Polling stops at the first transport
// error so a dead connection does not burn one request per tracked transfer.
func (t *transferService) Refresh(ctx context.Context) ([]models.Transfer, error) {
	var changed []models.Transfer

	for _, tracked := range t.Pending() {
		current, err := t.adapter.GetTransfer(ctx, tracked.TransferID)
		if err != nil {
			return changed, fmt.Errorf("refresh transfer %s: %w", tracked.TransferID, err)
		}

		if current.Status == tracked.Status {
			continue
		}
		changed = append(changed, current)

		t.mu.Lock()
		if current.Status.Final() {
			delete(t.pending, current.TransferID)
		} else {
			t.pending[current.TransferID] = current
		}
		t.mu.Unlock()

		t.logger.Debug().
			Str("transfer_id", current.TransferID).
			Str("status", string(current.Status)).
			Msg("transfer status changed")
	}

	return changed, nil
}

// Pending implements [TransferService].
func (t *transferService) Pending() []models.Transfer {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.Transfer, 0, len(t.pending))
	for _, tr := range t.pending {
		out = append(out, tr)
	}
	return out
}
