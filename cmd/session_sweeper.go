package main

import (
	"context"
	"log"
	"time"

	"github.com/dinakar-24/sse-pay/internal/repositories"
)

const sessionSweepTimeout = 1 * time.Minute

func startSessionSweeper(ctx context.Context, repo *repositories.SessionRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, sessionSweepTimeout)
			deleted, err := repo.DeleteExpired(runCtx, time.Now())
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("session sweeper: failed to delete expired sessions: %v", err)
				}
			} else if deleted > 0 && infoLog != nil {
				infoLog.Printf("session sweeper: deleted %d expired sessions", deleted)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
