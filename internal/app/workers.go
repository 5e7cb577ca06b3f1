package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/marlowhealth/compass_backend/config"
	"github.com/marlowhealth/compass_backend/internal/service/session"
	"github.com/marlowhealth/compass_backend/pkg/lock"
)

// WorkerModule registers the background workers: the crisis reconciliation
// subscriber and the stale-session sweeper.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	NC         *nats.Conn
	SessionSvc session.Service
	Locker     *lock.Locker
}

func RegisterWorkers(p WorkerParams) {
	sweepCtx, cancelSweep := context.WithCancel(context.Background())

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startCrisisWorker(p.NC, p.SessionSvc)
			go runStaleSweeper(sweepCtx, p.Cfg, p.SessionSvc, p.Locker)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelSweep()
			// NATS drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// crisis_worker
// ---------------------------------------------------------------------------

// startCrisisWorker re-derives the crisis flag from the persisted answers of
// every completed session. Scoring or aggregation failures must never
// suppress a crisis signal; this path reads the raw answers directly.
func startCrisisWorker(nc *nats.Conn, svc session.Service) {
	_, err := nc.Subscribe("compass.screening.completed.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		sessionID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}

		changed, err := svc.ReconcileCrisis(context.Background(), sessionID)
		if err != nil {
			slog.Warn("crisis_worker: reconcile failed", "session_id", sessionID, "err", err)
			return
		}
		if changed {
			slog.Warn("crisis_worker: crisis flag diverged and was corrected", "session_id", sessionID)
		}
	})
	if err != nil {
		slog.Error("crisis_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("crisis_worker: started")
}

// ---------------------------------------------------------------------------
// stale_sweeper
// ---------------------------------------------------------------------------

// runStaleSweeper periodically skips in-progress sessions idle beyond the
// configured window. The cluster-wide job lock keeps replicas from sweeping
// concurrently.
func runStaleSweeper(ctx context.Context, cfg *config.Config, svc session.Service, locker *lock.Locker) {
	interval := time.Duration(cfg.Screening.SweepIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	abandonAfter := time.Duration(cfg.Screening.AbandonAfterHours) * time.Hour
	if abandonAfter <= 0 {
		abandonAfter = 72 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("stale_sweeper: started", "interval", interval, "abandon_after", abandonAfter)

	for {
		select {
		case <-ctx.Done():
			slog.Info("stale_sweeper: stopped")
			return
		case <-ticker.C:
			release, err := locker.AcquireJob(ctx, "stale_session_sweep", interval)
			if err != nil {
				// Another replica holds the lock for this run.
				continue
			}

			swept, err := svc.SweepStale(ctx, time.Now().Add(-abandonAfter))
			if err != nil {
				slog.Warn("stale_sweeper: sweep failed", "err", err)
			} else if swept > 0 {
				slog.Info("stale_sweeper: sessions abandoned", "count", swept)
			}
			release()
		}
	}
}
