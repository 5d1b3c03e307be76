package tax

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Handler wires the tax compliance endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a compliance handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the compliance endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/records", h.List)
	r.Get("/summary", h.Summary)
	r.Post("/records/{id}/file", h.MarkFiled)
	r.Post("/records/{id}/pay", h.MarkPaid)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	views, err := h.service.List(r.Context(), ListRequest{
		Search: q.Get("search"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
	})
	if err != nil {
		h.logger.Error("list tax records failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, map[string]any{"records": views, "total": len(views)})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		h.logger.Error("tax summary failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, summary)
}

func (h *Handler) MarkFiled(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.MarkFiled(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("mark tax record filed failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, rec)
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("mark tax record paid failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, rec)
}
