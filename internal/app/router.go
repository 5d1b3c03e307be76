package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vantage-suite/vantage/internal/admin"
	"github.com/vantage-suite/vantage/internal/appointments"
	"github.com/vantage-suite/vantage/internal/dashboard"
	"github.com/vantage-suite/vantage/internal/invoices"
	"github.com/vantage-suite/vantage/internal/leads"
	"github.com/vantage-suite/vantage/internal/ledger"
	"github.com/vantage-suite/vantage/internal/observability"
	"github.com/vantage-suite/vantage/internal/proposals"
	"github.com/vantage-suite/vantage/internal/tax"
	"github.com/vantage-suite/vantage/jobs"
	"github.com/vantage-suite/vantage/report"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	LedgerHandler      *ledger.Handler
	InvoiceHandler     *invoices.Handler
	TaxHandler         *tax.Handler
	LeadHandler        *leads.Handler
	AppointmentHandler *appointments.Handler
	ProposalHandler    *proposals.Handler
	DashboardHandler   *dashboard.Handler
	AdminHandler       *admin.Handler
	ReportHandler      *report.Handler
	JobHandler         *jobs.Handler
	Metrics            *observability.Metrics
}

// NewRouter constructs the chi.Router with the standard stack.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/ledger", params.LedgerHandler.MountRoutes)
	r.Route("/invoices", params.InvoiceHandler.MountRoutes)
	r.Route("/tax", params.TaxHandler.MountRoutes)
	r.Route("/leads", params.LeadHandler.MountRoutes)
	r.Route("/appointments", params.AppointmentHandler.MountRoutes)
	r.Route("/proposals", params.ProposalHandler.MountRoutes)
	r.Route("/dashboard", params.DashboardHandler.MountRoutes)
	r.Route("/admin", params.AdminHandler.MountRoutes)
	if params.ReportHandler != nil {
		r.Route("/report", params.ReportHandler.MountRoutes)
	}
	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
