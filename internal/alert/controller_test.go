package alert

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bancada/internal/store"
	"bancada/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleAlerts_SeedData(t *testing.T) {
	s, _ := testutil.SetupSeededStore(t)
	c := NewController(s, zap.NewNop())

	rec := httptest.NewRecorder()
	c.HandleAlerts(rec, httptest.NewRequest(http.MethodGet, "/alerts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AlertsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.NotificationCount)
	assert.Empty(t, resp.LowStock)
	require.Len(t, resp.RestockSoon, 1)
	assert.Equal(t, 101, resp.RestockSoon[0].ID)
	require.Len(t, resp.PendingRepairs, 1)
	assert.Equal(t, 201, resp.PendingRepairs[0].ID)
}

func TestHandleAlerts_AfterClampedAdjustment(t *testing.T) {
	s, _ := testutil.SetupSeededStore(t)
	_, err := s.AdjustStock(101, -10, "test")
	require.NoError(t, err)
	c := NewController(s, zap.NewNop())

	rec := httptest.NewRecorder()
	c.HandleAlerts(rec, httptest.NewRequest(http.MethodGet, "/alerts", nil))

	var resp AlertsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.LowStock, 1)
	assert.Equal(t, 0, resp.LowStock[0].Qty)
	assert.Equal(t, 2, resp.NotificationCount)
}

func TestHandleDashboard(t *testing.T) {
	s, clock := testutil.SetupSeededStore(t)
	_, err := s.AddRepair(store.NewRepair{PhoneModel: "Galaxy A10"})
	require.NoError(t, err)
	clock.Advance(72 * time.Hour)
	c := NewController(s, zap.NewNop())

	rec := httptest.NewRecorder()
	c.HandleDashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.ProductCount)
	assert.Equal(t, 2, resp.SupplierCount)
	assert.Equal(t, 2, resp.RepairCount)
	assert.True(t, decimal.NewFromInt(975).Equal(resp.TotalStockValue))
	assert.Equal(t, 0, resp.LowStockCount)
	assert.Empty(t, resp.LowStockNames)
	assert.Equal(t, []string{"Tela iPhone X"}, resp.RestockSoonNames)
	assert.Equal(t, 2, resp.PendingRepairCount)
	assert.Equal(t, 2, resp.NotificationCount)
	require.NotNil(t, resp.OldestPendingAgeDays)
	assert.Equal(t, 3, *resp.OldestPendingAgeDays)
}

func TestHandleDashboard_NoPendingRepairs(t *testing.T) {
	s, _ := testutil.SetupStore(t)
	c := NewController(s, zap.NewNop())

	rec := httptest.NewRecorder()
	c.HandleDashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	var resp DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Nil(t, resp.OldestPendingAgeDays)
	assert.Equal(t, 0, resp.NotificationCount)
	assert.True(t, decimal.Zero.Equal(resp.TotalStockValue))
}
