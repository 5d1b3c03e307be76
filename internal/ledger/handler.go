package ledger

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Handler wires the day-book endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a day-book handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the day-book endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/entries", h.List)
	r.Get("/summary", h.DailySummary)
	r.Post("/entries", h.Append)
	r.Post("/entries/{id}/reverse", h.Reverse)
	r.Post("/entries/{id}/archive", h.Archive)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ListRequest{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		Direction:   q.Get("direction"),
		Status:      q.Get("status"),
		DatePreset:  q.Get("preset"),
		DateFrom:    parseDate(q.Get("from")),
		DateTo:      parseDate(q.Get("to")),
		PendingOnly: q.Get("pending") == "true",
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Page = page
		req.PerPage = 25
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list day-book entries failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) DailySummary(w http.ResponseWriter, r *http.Request) {
	date := parseDate(r.URL.Query().Get("date"))
	if date.IsZero() {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "date is required (YYYY-MM-DD)"})
		return
	}

	summary, err := h.service.DailySummary(r.Context(), date)
	if err != nil {
		h.logger.Error("day-book summary failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Append(w http.ResponseWriter, r *http.Request) {
	var req AppendRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.service.Append(r.Context(), req)
	if err != nil {
		h.logger.Error("append day-book entry failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) Reverse(w http.ResponseWriter, r *http.Request) {
	reversal, err := h.service.Reverse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("reverse day-book entry failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, reversal)
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Error("archive day-book entry failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusNoContent, nil)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
