package product

import (
	"time"

	"bancada/internal/domain"
	"bancada/internal/dto"
	"bancada/internal/store"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name     string         `json:"name"`
	Qty      dto.FlexString `json:"qty"`
	Category string         `json:"category"`
	Price    dto.FlexString `json:"price"`
	MinQty   dto.FlexString `json:"minQty"`
}

type AdjustStockRequest struct {
	Delta  dto.FlexString `json:"delta"`
	Reason string         `json:"reason"`
}

type ProductDTO struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Qty         int              `json:"qty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinQty      *int             `json:"minQty,omitempty"`
	LowStock    bool             `json:"lowStock"`
	RestockSoon bool             `json:"restockSoon"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

type StockMoveDTO struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"productId"`
	ProductName *string   `json:"productName"`
	Delta       int       `json:"delta"`
	Direction   string    `json:"direction"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
}

type ListStockMovesResponse struct {
	Moves []StockMoveDTO `json:"moves"`
}

func ToProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Qty:         p.Qty,
		Category:    p.Category,
		Price:       p.Price,
		MinQty:      p.MinQty,
		LowStock:    p.IsLowStock(),
		RestockSoon: p.NeedsRestockSoon(),
		CreatedAt:   p.CreatedAt,
	}
}

func ToProductDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductDTO(p))
	}
	return out
}

func toStockMoveDTO(m domain.StockMove, productName *string) StockMoveDTO {
	direction := "OUT"
	if m.IsEntry() {
		direction = "IN"
	}
	return StockMoveDTO{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: productName,
		Delta:       m.Delta,
		Direction:   direction,
		Reason:      m.Reason,
		Date:        m.Date,
	}
}

func toStockMoveDTOs(entries []store.StockMoveEntry) []StockMoveDTO {
	out := make([]StockMoveDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toStockMoveDTO(e.Move, e.ProductName))
	}
	return out
}
