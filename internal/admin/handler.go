package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Handler wires the owner console endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs an admin handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the owner console endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/tenants", h.List)
	r.Get("/summary", h.Summary)
	r.Post("/tenants/{id}/suspend", h.Suspend)
	r.Post("/tenants/{id}/activate", h.Activate)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tenants, err := h.service.List(r.Context(), ListRequest{
		Search: q.Get("search"),
		Plan:   q.Get("plan"),
		Status: q.Get("status"),
	})
	if err != nil {
		h.logger.Error("list tenants failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, map[string]any{"tenants": tenants, "total": len(tenants)})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		h.logger.Error("platform summary failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Suspend(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.service.Suspend(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("suspend tenant failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, tenant)
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.service.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("activate tenant failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, tenant)
}
