// Package alert serves the derived views behind the dashboard and the
// notification badge.
package alert

import (
	"net/http"

	"bancada/internal/commons"
	"bancada/internal/domain"
	"bancada/internal/product"
	"bancada/internal/repair"
	"bancada/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Store interface {
	LowStockItems() []domain.Product
	RestockSoonItems() []domain.Product
	PendingRepairs() []domain.Repair
	NotificationCount() int
	Dashboard() store.Dashboard
}

type AlertsResponse struct {
	NotificationCount int                  `json:"notificationCount"`
	LowStock          []product.ProductDTO `json:"lowStock"`
	RestockSoon       []product.ProductDTO `json:"restockSoon"`
	PendingRepairs    []repair.RepairDTO   `json:"pendingRepairs"`
}

type DashboardResponse struct {
	ProductCount         int             `json:"productCount"`
	SupplierCount        int             `json:"supplierCount"`
	RepairCount          int             `json:"repairCount"`
	TotalStockValue      decimal.Decimal `json:"totalStockValue"`
	LowStockCount        int             `json:"lowStockCount"`
	LowStockNames        []string        `json:"lowStockNames"`
	RestockSoonCount     int             `json:"restockSoonCount"`
	RestockSoonNames     []string        `json:"restockSoonNames"`
	PendingRepairCount   int             `json:"pendingRepairCount"`
	NotificationCount    int             `json:"notificationCount"`
	OldestPendingAgeDays *int            `json:"oldestPendingAgeDays"`
}

type Controller struct {
	store   Store
	respond *commons.Responder
}

func NewController(s Store, logger *zap.Logger) *Controller {
	return &Controller{
		store:   s,
		respond: commons.NewResponder(logger),
	}
}

func NewModule(s *store.Store, logger *zap.Logger) *Controller {
	return NewController(s, logger.Named("alert"))
}

func (c *Controller) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	c.respond.JSON(w, http.StatusOK, AlertsResponse{
		NotificationCount: c.store.NotificationCount(),
		LowStock:          product.ToProductDTOs(c.store.LowStockItems()),
		RestockSoon:       product.ToProductDTOs(c.store.RestockSoonItems()),
		PendingRepairs:    repair.ToRepairDTOs(c.store.PendingRepairs()),
	})
}

func (c *Controller) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	d := c.store.Dashboard()
	c.respond.JSON(w, http.StatusOK, DashboardResponse{
		ProductCount:         d.ProductCount,
		SupplierCount:        d.SupplierCount,
		RepairCount:          d.RepairCount,
		TotalStockValue:      d.TotalStockValue,
		LowStockCount:        d.LowStockCount,
		LowStockNames:        d.LowStockNames,
		RestockSoonCount:     d.RestockSoonCount,
		RestockSoonNames:     d.RestockSoonNames,
		PendingRepairCount:   d.PendingRepairs,
		NotificationCount:    d.Notifications,
		OldestPendingAgeDays: d.OldestPendingAgeDays,
	})
}
