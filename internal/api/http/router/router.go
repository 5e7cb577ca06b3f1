package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/marlowhealth/compass_backend/config"
	"github.com/marlowhealth/compass_backend/internal/api/http/handler"
	"github.com/marlowhealth/compass_backend/internal/api/http/middleware"
	"github.com/marlowhealth/compass_backend/internal/service/catalog"
	"github.com/marlowhealth/compass_backend/internal/service/session"
	"github.com/marlowhealth/compass_backend/internal/service/triage"
	"github.com/marlowhealth/compass_backend/pkg/authorize"
	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	Auth       authorize.IAuthorization
	CatalogSvc catalog.Service
	SessionSvc session.Service
	TriageSvc  triage.Service
	PasetoMgr  *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	sessionH := handler.NewSessionHandler(r.p.SessionSvc)
	triageH := handler.NewTriageHandler(r.p.TriageSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerCatalogRoutes(api, catalogH, authRequired, requirePerm)
	r.registerSessionRoutes(api, sessionH, authRequired, requirePerm)
	r.registerTriageRoutes(api, triageH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
