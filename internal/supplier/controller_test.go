package supplier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bancada/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSupplierEndpoints_AgainstSeededStore(t *testing.T) {
	s, _ := testutil.SetupSeededStore(t)
	c := NewController(s, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/suppliers", c.HandleListSuppliers)
	r.Post("/suppliers", c.HandleCreateSupplier)

	req := httptest.NewRequest(http.MethodPost, "/suppliers", strings.NewReader(`{"name":"Distribuidora Sul","phone":"11 3333-4444"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created SupplierDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Distribuidora Sul", created.Name)
	require.NotNil(t, created.Phone)

	req = httptest.NewRequest(http.MethodGet, "/suppliers", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list ListSuppliersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list.Suppliers, 3)
	assert.Equal(t, created.ID, list.Suppliers[0].ID)
	assert.Equal(t, "Fornecedor A", list.Suppliers[1].Name)
}

func TestCreateSupplier_BlankName(t *testing.T) {
	s, _ := testutil.SetupSeededStore(t)
	c := NewController(s, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/suppliers", strings.NewReader(`{"name":"   "}`))
	rec := httptest.NewRecorder()
	c.HandleCreateSupplier(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, s.Suppliers(), 2)
}
