package main

import (
	"context"
	"log"
	"time"

	"github.com/dinakar-24/sse-pay/internal/repositories"
)

const (
	paymentSweepInterval = 10 * time.Minute
	paymentSweepTimeout  = 30 * time.Second

	// Razorpay orders stop being payable well before this, so a pending
	// payment this old will never settle.
	pendingPaymentMaxAge = 24 * time.Hour
)

func startPaymentSweeper(ctx context.Context, repo *repositories.PaymentRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(paymentSweepInterval)
		defer ticker.Stop()

		run := func() {
			runCtx, cancel := context.WithTimeout(ctx, paymentSweepTimeout)
			defer cancel()

			failed, err := repo.MarkExpiredPendingFailed(runCtx, time.Now().Add(-pendingPaymentMaxAge))
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("payment sweeper: failed to expire pending payments: %v", err)
				}
				return
			}
			if failed > 0 && infoLog != nil {
				infoLog.Printf("payment sweeper: marked %d stale pending payments failed", failed)
			}
		}

		run()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
