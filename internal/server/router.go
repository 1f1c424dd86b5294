package server

import (
	"net/http"

	"bancada/internal/alert"
	"bancada/internal/infrastructure/logger"
	"bancada/internal/product"
	"bancada/internal/repair"
	"bancada/internal/supplier"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	productCtrl *product.Controller,
	supplierCtrl *supplier.Controller,
	repairCtrl *repair.Controller,
	alertCtrl *alert.Controller,
	zapLogger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger(zapLogger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productCtrl.HandleListProducts)
		r.Post("/", productCtrl.HandleCreateProduct)
		r.Get("/{productId}", productCtrl.HandleGetProduct)
		r.Post("/{productId}/stock-moves", productCtrl.HandleAdjustStock)
	})

	r.Route("/stock-moves", func(r chi.Router) {
		r.Get("/", productCtrl.HandleListStockMoves)
		r.Get("/export", productCtrl.HandleExportStockMoves)
	})

	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", supplierCtrl.HandleListSuppliers)
		r.Post("/", supplierCtrl.HandleCreateSupplier)
	})

	r.Route("/repairs", func(r chi.Router) {
		r.Get("/", repairCtrl.HandleListRepairs)
		r.Post("/", repairCtrl.HandleCreateRepair)
		r.Put("/{repairId}/status", repairCtrl.HandleSetStatus)
		r.Post("/{repairId}/status/advance", repairCtrl.HandleAdvanceStatus)
	})

	r.Get("/alerts", alertCtrl.HandleAlerts)
	r.Get("/dashboard", alertCtrl.HandleDashboard)

	return r
}
