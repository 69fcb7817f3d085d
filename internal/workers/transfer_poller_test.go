package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkruglov/chainvault-go/internal/logger"
	"github.com/pkruglov/chainvault-go/models"
	"github.com/stretchr/testify/assert"
)

type countingTransfers struct {
	refreshes atomic.Int64
}

func (c *countingTransfers) Send(ctx context.Context, req models.TransferRequest) (models.Transfer, error) {
	return models.Transfer{}, nil
}

func (c *countingTransfers) Refresh(ctx context.Context) ([]models.Transfer, error) {
	c.refreshes.Add(1)
	return nil, nil
}

func (c *countingTransfers) Pending() []models.Transfer { return nil }

func TestTransferPoller_PollsUntilStopped(t *testing.T) {
	transfers := &countingTransfers{}
	poller := NewTransferPoller(context.Background(), transfers, 10*time.Millisecond, logger.Nop())

	poller.Run()

	assert.Eventually(t, func() bool {
		return transfers.refreshes.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	poller.Stop()
	stopped := transfers.refreshes.Load()

	// No further refreshes after Stop (allow one in-flight tick).
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, transfers.refreshes.Load(), stopped+1)
}

func TestTransferPoller_DisabledWithoutInterval(t *testing.T) {
	transfers := &countingTransfers{}
	poller := NewTransferPoller(context.Background(), transfers, 0, logger.Nop())

	poller.Run()
	time.Sleep(30 * time.Millisecond)

	assert.Zero(t, transfers.refreshes.Load())
}
