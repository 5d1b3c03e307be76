package invoices

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/vantage-suite/vantage/internal/docgen"
	"github.com/vantage-suite/vantage/internal/shared"
)

// PDFRenderClient converts document markup into a PDF. The Gotenberg client
// satisfies this.
type PDFRenderClient interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// Handler wires the invoice endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	renderer  *docgen.Renderer
	pdf       PDFRenderClient
	exportLim func(http.Handler) http.Handler
}

// NewHandler constructs an invoice handler. pdf may be nil when no renderer
// is deployed; the export endpoint then reports unavailable.
func NewHandler(logger *slog.Logger, service *Service, renderer *docgen.Renderer, pdf PDFRenderClient) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		renderer: renderer,
		pdf:      pdf,
		// PDF conversion is the one expensive call in the module; throttle it.
		exportLim: httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
}

// MountRoutes registers the invoice endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/send", h.Send)
	r.Post("/{id}/status", h.Transition)
	r.Get("/{id}/document", h.Document)
	r.Group(func(r chi.Router) {
		r.Use(h.exportLim)
		r.Get("/{id}/pdf", h.ExportPDF)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.List(r.Context(), ListRequest{
		Search:       q.Get("search"),
		Status:       q.Get("status"),
		AmountBucket: q.Get("amount"),
		DatePreset:   q.Get("preset"),
		DateFrom:     parseDate(q.Get("from")),
		DateTo:       parseDate(q.Get("to")),
	})
	if err != nil {
		h.logger.Error("list invoices failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, invoice)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	invoice, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create invoice failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, invoice)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	invoice, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		if errors.Is(err, ErrNotEditable) {
			shared.RespondJSON(w, http.StatusUnprocessableEntity, shared.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("update invoice failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, invoice)
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.service.Send(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrMissingEmail) {
			shared.RespondJSON(w, http.StatusUnprocessableEntity, shared.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("send invoice failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, invoice)
}

func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status Status `json:"status"`
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "invalid request body"})
		return
	}
	invoice, err := h.service.Transition(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.logger.Error("invoice status change failed", slog.Any("error", err))
		shared.RespondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, invoice)
}

func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(RenderDocument(h.renderer, *invoice)))
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		shared.RespondJSON(w, http.StatusServiceUnavailable, shared.ErrorResponse{Error: "pdf renderer not configured"})
		return
	}
	invoice, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, err)
		return
	}

	pdf, err := h.pdf.RenderHTML(r.Context(), RenderDocument(h.renderer, *invoice))
	if err != nil {
		h.logger.Error("invoice pdf export failed", slog.Any("error", err))
		shared.RespondJSON(w, http.StatusBadGateway, shared.ErrorResponse{Error: "pdf render failed"})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+invoice.Number+`.pdf"`)
	_, _ = w.Write(pdf)
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
