package product

import (
	"bancada/internal/domain"
	"bancada/internal/store"
)

type Store interface {
	AddProduct(in store.NewProduct) (domain.Product, error)
	Products() []domain.Product
	Product(id int) (domain.Product, error)
	AdjustStock(productID int, delta int, reason string) (domain.StockMove, error)
	StockMoveHistory() []store.StockMoveEntry
	ExportStockMoves() string
}
