package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salesops/internal/http/handlers"
	"salesops/internal/infra"
	"salesops/internal/middleware"
)

// NewRouter wires every route. Finance routes sit behind the unlock-token
// gate; everything else is open to the dashboard frontend.
func NewRouter(app *handlers.App, cfg *infra.Config) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.Metrics,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/v1/dashboard", app.DashboardOverview)
	r.Get("/v1/sales", app.SalesOverview)

	r.Route("/v1/adspend", func(r chi.Router) {
		r.Get("/", app.AdSpendList)
		r.Post("/", app.AdSpendUpsert)
		r.Delete("/{id}", app.AdSpendDelete)
	})

	r.Route("/v1/funnel", func(r chi.Router) {
		r.Get("/", app.FunnelList)
		r.Post("/", app.FunnelUpsert)
		r.Delete("/{id}", app.FunnelDelete)
	})

	r.Route("/v1/leads", func(r chi.Router) {
		r.Get("/", app.LeadsList)
		r.Post("/", app.LeadsUpsert)
		r.Delete("/{id}", app.LeadsDelete)
	})

	r.Post("/v1/finance/unlock", app.FinanceUnlock)
	r.Route("/v1/finance", func(r chi.Router) {
		r.Use(middleware.FinanceGate(cfg.TokenSecret))
		r.Get("/summary", app.FinanceSummary)
		r.Route("/entries", func(r chi.Router) {
			r.Get("/", app.FinanceEntriesList)
			r.Post("/", app.FinanceEntryUpsert)
			r.Delete("/{id}", app.FinanceEntryDelete)
		})
	})

	r.Route("/v1/tasks", func(r chi.Router) {
		r.Get("/", app.TasksList)
		r.Post("/", app.TasksUpsert)
		r.Delete("/{id}", app.TasksDelete)
	})

	return r
}
