package invoices

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-suite/vantage/internal/docgen"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(NewMemoryRepository()), docgen.NewRenderer(), nil)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestUpdateRejectsSentInvoiceAsUnprocessable(t *testing.T) {
	router := newTestRouter(t)

	// inv-2002 is already sent; edits must surface as a client error.
	req := httptest.NewRequest(http.MethodPut, "/inv-2002", strings.NewReader(`{"notes":"late fee applies"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "draft")
}

func TestUpdateDraftInvoiceSucceeds(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/inv-2003", strings.NewReader(`{"notes":"include onboarding call"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "include onboarding call")
}
