// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/security"
)

// DenylistCleanupWorker periodically drops revoked tokens whose expiry has
// passed. Expired tokens are rejected by the token manager anyway, so
// purging only bounds the memory held by the denylist.
type DenylistCleanupWorker struct {
	denylist *security.Denylist
	interval time.Duration
	logger   *logger.Logger
}

func NewDenylistCleanupWorker(denylist *security.Denylist, interval time.Duration, logger *logger.Logger) *DenylistCleanupWorker {
	return &DenylistCleanupWorker{
		denylist: denylist,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the cleanup loop in a new goroutine. The loop stops when ctx is
// cancelled.
func (w *DenylistCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Str("func", "DenylistCleanupWorker.Run").Dur("interval", w.interval).Msg("starting denylist cleanup worker")
	go w.loop(ctx)
}

func (w *DenylistCleanupWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "DenylistCleanupWorker.loop").Msg("denylist cleanup worker stopped")
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

func (w *DenylistCleanupWorker) purge() int {
	purged := w.denylist.PurgeExpired()
	if purged > 0 {
		w.logger.Debug().
			Str("func", "DenylistCleanupWorker.purge").
			Int("purged", purged).
			Int("remaining", w.denylist.Len()).
			Msg("expired revoked tokens purged")
	}
	return purged
}
