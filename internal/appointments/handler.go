package appointments

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Handler wires the scheduling endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a scheduling handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the scheduling endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/schedule", h.Schedule)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Post("/{id}/status", h.UpdateStatus)
	r.Post("/{id}/reschedule", h.Reschedule)
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

func listRequest(r *http.Request) ListRequest {
	q := r.URL.Query()
	return ListRequest{
		Search:      q.Get("search"),
		MeetingType: q.Get("type"),
		Status:      q.Get("status"),
		Priority:    q.Get("priority"),
		DatePreset:  q.Get("preset"),
		From:        parseDate(q.Get("from")),
		To:          parseDate(q.Get("to")),
		Upcoming:    q.Get("upcoming") == "true",
	}
}

func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.Schedule(r.Context(), listRequest(r))
	if err != nil {
		h.logger.Error("schedule view failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, schedule)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	appts, err := h.service.List(r.Context(), listRequest(r))
	if err != nil {
		h.logger.Error("list appointments failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, map[string]any{"appointments": appts, "total": len(appts)})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	appt, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, appt)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	appt, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create appointment failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, appt)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status Status `json:"status"`
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	appt, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.logger.Error("update appointment status failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, appt)
}

func (h *Handler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	appt, err := h.service.Reschedule(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.logger.Error("reschedule appointment failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, appt)
}
