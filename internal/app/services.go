package app

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/marlowhealth/compass_backend/config"
	"github.com/marlowhealth/compass_backend/internal/repo"
	"github.com/marlowhealth/compass_backend/internal/screening"
	"github.com/marlowhealth/compass_backend/internal/service/catalog"
	"github.com/marlowhealth/compass_backend/internal/service/session"
	"github.com/marlowhealth/compass_backend/internal/service/triage"
	"github.com/marlowhealth/compass_backend/pkg/lock"
	"github.com/marlowhealth/compass_backend/pkg/observability"
	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideCatalogService,
		ProvideTriageService,
		ProvideSessionService,
		ProvidePasetoManager,
		ProvideScreeningMetrics,
	),
	fx.Invoke(CheckRoutingTable),
)

// CheckRoutingTable fails boot when the destination routing table has a hole,
// so a session can never reach a band/context pair with no mapping.
func CheckRoutingTable() error {
	return screening.ValidateRoutingTable()
}

func ProvideCatalogService(db *repo.Client) catalog.Service {
	return catalog.New(db)
}

func ProvideTriageService(db *repo.Client, locker *lock.Locker, nc *nats.Conn) triage.Service {
	return triage.New(db, locker, nc)
}

func ProvideSessionService(
	db *repo.Client,
	cat catalog.Service,
	tri triage.Service,
	locker *lock.Locker,
	nc *nats.Conn,
	metrics *observability.ScreeningMetrics,
) session.Service {
	return session.New(db, cat, tri, locker, nc, metrics, slog.Default())
}

// ProvideScreeningMetrics registers the domain counters against the global
// meter. With observability disabled the global meter is a no-op, so the
// counters cost nothing.
func ProvideScreeningMetrics() (*observability.ScreeningMetrics, error) {
	return observability.NewScreeningMetrics()
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
