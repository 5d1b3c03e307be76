package proposals

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/vantage-suite/vantage/internal/shared"
)

// PDFRenderClient converts document markup into a PDF. The Gotenberg client
// satisfies this.
type PDFRenderClient interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// Handler wires the proposal builder endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	pdf       PDFRenderClient
	exportLim func(http.Handler) http.Handler
}

// NewHandler constructs a proposal handler. pdf may be nil when no renderer
// is deployed; the export endpoint then reports unavailable.
func NewHandler(logger *slog.Logger, service *Service, pdf PDFRenderClient) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		pdf:       pdf,
		exportLim: httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
}

// MountRoutes registers the proposal endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Post("/{id}/status", h.Transition)
	r.Post("/{id}/pages", h.AddPage)
	r.Put("/{id}/pages/{pageID}", h.UpdatePage)
	r.Post("/{id}/pages/{pageID}/reorder", h.ReorderPage)
	r.Get("/{id}/pages/{pageID}/preview", h.PreviewPage)
	r.Get("/{id}/document", h.Document)
	r.Group(func(r chi.Router) {
		r.Use(h.exportLim)
		r.Get("/{id}/pdf", h.ExportPDF)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.List(r.Context(), ListRequest{
		Search: q.Get("search"),
		Status: q.Get("status"),
	})
	if err != nil {
		h.logger.Error("list proposals failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create proposal failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, p)
}

func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status Status `json:"status"`
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	p, err := h.service.Transition(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.logger.Error("proposal status change failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) AddPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PageType PageType `json:"page_type"`
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	p, err := h.service.AddPage(r.Context(), chi.URLParam(r, "id"), req.PageType)
	if err != nil {
		h.respondPageError(w, "add page failed", err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	var req UpdatePageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	p, err := h.service.UpdatePage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "pageID"), req)
	if err != nil {
		h.respondPageError(w, "update page failed", err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) ReorderPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Position int `json:"position"`
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	p, err := h.service.ReorderPage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "pageID"), req.Position)
	if err != nil {
		h.respondPageError(w, "reorder page failed", err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) PreviewPage(w http.ResponseWriter, r *http.Request) {
	html, err := h.service.RenderPage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "pageID"))
	if err != nil {
		h.respondPageError(w, "page preview failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	html, err := h.service.RenderDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		shared.RespondJSON(w, http.StatusServiceUnavailable, shared.ErrorResponse{Error: "pdf renderer not configured"})
		return
	}
	id := chi.URLParam(r, "id")
	html, err := h.service.RenderDocument(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	pdf, err := h.pdf.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("proposal pdf export failed", slog.Any("error", err))
		shared.RespondJSON(w, http.StatusBadGateway, shared.ErrorResponse{Error: "pdf render failed"})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id+`.pdf"`)
	_, _ = w.Write(pdf)
}

func (h *Handler) respondPageError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, ErrNotEditable), errors.Is(err, ErrPageNotFound):
		shared.RespondJSON(w, http.StatusUnprocessableEntity, shared.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error(msg, slog.Any("error", err))
		shared.RespondError(w, err)
	}
}
