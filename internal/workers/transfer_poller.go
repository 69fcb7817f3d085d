package workers

import (
	"context"
	"time"

	"github.com/pkruglov/chainvault-go/internal/logger"
	"github.com/pkruglov/chainvault-go/internal/service"
)

// TransferPoller periodically refreshes the status of every tracked
// non-final transfer through [service.TransferService]. It stops polling
// when Stop is called or its parent context is cancelled.
type TransferPoller struct {
	transfers service.TransferService
	interval  time.Duration
	logger    *logger.Logger

	ctx  context.Context
	stop context.CancelFunc
}

// NewTransferPoller constructs a [TransferPoller] with the given poll
// interval. An interval of zero or less disables the poller: Run becomes a
// no-op.
func NewTransferPoller(ctx context.Context, transfers service.TransferService, interval time.Duration, log *logger.Logger) *TransferPoller {
	ctx, cancel := context.WithCancel(ctx)
	return &TransferPoller{
		transfers: transfers,
		interval:  interval,
		logger:    log,
		ctx:       ctx,
		stop:      cancel,
	}
}

// Run implements [Worker]. It spawns the polling loop and returns
// immediately.
func (w *TransferPoller) Run() {
	if w.interval <= 0 {
		w.logger.Debug().Msg("transfer poller disabled")
		return
	}

	go w.loop()
}

// Stop terminates the polling loop. Safe to call more than once.
func (w *TransferPoller) Stop() {
	w.stop()
}

func (w *TransferPoller) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Debug().Msg("transfer poller stopped")
			return
		case <-ticker.C:
			changed, err := w.transfers.Refresh(w.ctx)
			if err != nil {
				w.logger.Error().Err(err).Msg("refresh pending transfers")
				continue
			}
			for _, tr := range changed {
				w.logger.Info().
					Str("transfer_id", tr.TransferID).
					Str("status", string(tr.Status)).
					Msg("transfer status update")
			}
		}
	}
}
