package leads

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantage-suite/vantage/internal/shared"
)

// Handler wires the pipeline endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a pipeline handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the pipeline endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/board", h.Board)
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/{id}/move", h.Move)
}

func listRequest(r *http.Request) ListRequest {
	q := r.URL.Query()
	return ListRequest{
		Search:      q.Get("search"),
		Priority:    q.Get("priority"),
		Stage:       q.Get("stage"),
		ValueBucket: q.Get("value"),
	}
}

func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Board(r.Context(), listRequest(r))
	if err != nil {
		h.logger.Error("pipeline board failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, board)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.service.List(r.Context(), listRequest(r))
	if err != nil {
		h.logger.Error("list leads failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, map[string]any{"leads": leads, "total": len(leads)})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	lead, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create lead failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, lead)
}

func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stage Stage `json:"stage"`
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	lead, err := h.service.Move(r.Context(), chi.URLParam(r, "id"), req.Stage)
	if err != nil {
		if err == ErrTerminalStage {
			shared.RespondJSON(w, http.StatusUnprocessableEntity, shared.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("move lead failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, lead)
}
