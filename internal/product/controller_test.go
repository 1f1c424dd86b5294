package product

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bancada/internal/domain"
	"bancada/internal/dto"
	apperrors "bancada/internal/errors"
	"bancada/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock implementations
type mockStore struct {
	AddProductFunc       func(in store.NewProduct) (domain.Product, error)
	ProductsFunc         func() []domain.Product
	ProductFunc          func(id int) (domain.Product, error)
	AdjustStockFunc      func(productID int, delta int, reason string) (domain.StockMove, error)
	StockMoveHistoryFunc func() []store.StockMoveEntry
	ExportStockMovesFunc func() string
}

func (m *mockStore) AddProduct(in store.NewProduct) (domain.Product, error) {
	return m.AddProductFunc(in)
}

func (m *mockStore) Products() []domain.Product {
	return m.ProductsFunc()
}

func (m *mockStore) Product(id int) (domain.Product, error) {
	return m.ProductFunc(id)
}

func (m *mockStore) AdjustStock(productID int, delta int, reason string) (domain.StockMove, error) {
	return m.AdjustStockFunc(productID, delta, reason)
}

func (m *mockStore) StockMoveHistory() []store.StockMoveEntry {
	return m.StockMoveHistoryFunc()
}

func (m *mockStore) ExportStockMoves() string {
	return m.ExportStockMovesFunc()
}

func newTestRouter(s Store) http.Handler {
	c := NewController(s, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/products", c.HandleListProducts)
	r.Post("/products", c.HandleCreateProduct)
	r.Get("/products/{productId}", c.HandleGetProduct)
	r.Post("/products/{productId}/stock-moves", c.HandleAdjustStock)
	r.Get("/stock-moves", c.HandleListStockMoves)
	r.Get("/stock-moves/export", c.HandleExportStockMoves)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// Tests

func TestHandleCreateProduct_CoercesFormValues(t *testing.T) {
	var captured store.NewProduct
	s := &mockStore{
		AddProductFunc: func(in store.NewProduct) (domain.Product, error) {
			captured = in
			return domain.Product{ID: 7, Name: in.Name, Qty: in.Qty, Price: in.Price, MinQty: in.MinQty}, nil
		},
	}

	rec := do(t, newTestRouter(s), http.MethodPost, "/products",
		`{"name":"Tela Moto G","qty":"abc","price":"89.90","minQty":2,"category":"Telas"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Tela Moto G", captured.Name)
	assert.Equal(t, 0, captured.Qty)
	assert.Equal(t, "Telas", captured.Category)
	require.NotNil(t, captured.Price)
	assert.True(t, decimal.RequireFromString("89.9").Equal(*captured.Price))
	require.NotNil(t, captured.MinQty)
	assert.Equal(t, 2, *captured.MinQty)

	var got ProductDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 7, got.ID)
	assert.True(t, got.LowStock)
	assert.True(t, got.RestockSoon)
}

func TestHandleCreateProduct_UnreadablePrice(t *testing.T) {
	s := &mockStore{
		AddProductFunc: func(in store.NewProduct) (domain.Product, error) {
			t.Fatal("store should not be called")
			return domain.Product{}, nil
		},
	}

	rec := do(t, newTestRouter(s), http.MethodPost, "/products", `{"name":"Cabo","price":"caro","minQty":"1.5"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "price", resp.Details[0].Field)
	assert.Equal(t, "minQty", resp.Details[1].Field)
	assert.NotEmpty(t, resp.TraceID)
}

func TestHandleCreateProduct_StoreValidationError(t *testing.T) {
	s := &mockStore{
		AddProductFunc: func(in store.NewProduct) (domain.Product, error) {
			return domain.Product{}, apperrors.NewValidationError("name is required", apperrors.ValidationDetail{Field: "name", Message: "name is required"})
		},
	}

	rec := do(t, newTestRouter(s), http.MethodPost, "/products", `{"name":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "name is required", resp.Message)
}

func TestHandleCreateProduct_InvalidJSON(t *testing.T) {
	rec := do(t, newTestRouter(&mockStore{}), http.MethodPost, "/products", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "body", resp.Details[0].Field)
}

func TestHandleGetProduct(t *testing.T) {
	s := &mockStore{
		ProductFunc: func(id int) (domain.Product, error) {
			if id == 101 {
				return domain.Product{ID: 101, Name: "Tela iPhone X", Qty: 5}, nil
			}
			return domain.Product{}, apperrors.NewNotFoundError("product with id 9 not found")
		},
	}
	h := newTestRouter(s)

	rec := do(t, h, http.MethodGet, "/products/101", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/products/9", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)

	rec = do(t, h, http.MethodGet, "/products/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListProducts(t *testing.T) {
	s := &mockStore{
		ProductsFunc: func() []domain.Product {
			return []domain.Product{{ID: 2, Name: "B", Qty: 30}, {ID: 1, Name: "A", Qty: 1}}
		},
	}

	rec := do(t, newTestRouter(s), http.MethodGet, "/products", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListProductsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Products, 2)
	assert.Equal(t, 2, resp.Products[0].ID)
	assert.False(t, resp.Products[0].RestockSoon)
	assert.True(t, resp.Products[1].RestockSoon)
}

func TestHandleAdjustStock(t *testing.T) {
	date := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	s := &mockStore{
		AdjustStockFunc: func(productID int, delta int, reason string) (domain.StockMove, error) {
			assert.Equal(t, 101, productID)
			assert.Equal(t, -10, delta)
			assert.Equal(t, "test", reason)
			return domain.StockMove{ID: 300, ProductID: productID, Delta: delta, Reason: reason, Date: date}, nil
		},
		ProductFunc: func(id int) (domain.Product, error) {
			return domain.Product{ID: id, Name: "Tela iPhone X"}, nil
		},
	}

	rec := do(t, newTestRouter(s), http.MethodPost, "/products/101/stock-moves", `{"delta":"-10","reason":"test"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got StockMoveDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 300, got.ID)
	assert.Equal(t, -10, got.Delta)
	assert.Equal(t, "OUT", got.Direction)
	require.NotNil(t, got.ProductName)
	assert.Equal(t, "Tela iPhone X", *got.ProductName)
}

func TestHandleAdjustStock_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "unknown product", err: apperrors.NewNotFoundError("product with id 5 not found"), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "zero delta", err: apperrors.NewValidationError("delta must not be zero"), status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "unexpected", err: assert.AnError, status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockStore{
				AdjustStockFunc: func(productID int, delta int, reason string) (domain.StockMove, error) {
					return domain.StockMove{}, tt.err
				},
			}

			rec := do(t, newTestRouter(s), http.MethodPost, "/products/5/stock-moves", `{"delta":1}`)

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestHandleListStockMoves(t *testing.T) {
	name := "Bateria Genérica"
	s := &mockStore{
		StockMoveHistoryFunc: func() []store.StockMoveEntry {
			return []store.StockMoveEntry{
				{Move: domain.StockMove{ID: 3, ProductID: 102, Delta: 4, Reason: "compra"}, ProductName: &name},
				{Move: domain.StockMove{ID: 2, ProductID: 77, Delta: -1, Reason: "Ajuste"}},
			}
		},
	}

	rec := do(t, newTestRouter(s), http.MethodGet, "/stock-moves", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListStockMovesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Moves, 2)
	assert.Equal(t, "IN", resp.Moves[0].Direction)
	require.NotNil(t, resp.Moves[0].ProductName)
	assert.Nil(t, resp.Moves[1].ProductName)
}

func TestHandleExportStockMoves(t *testing.T) {
	s := &mockStore{
		ExportStockMovesFunc: func() string { return store.NoStockMovesPlaceholder },
	}

	rec := do(t, newTestRouter(s), http.MethodGet, "/stock-moves/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sem movimentos", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
