package domain

import "time"

const DefaultStockMoveReason = "Ajuste"

// StockMove records a requested stock adjustment. Delta is the amount asked
// for, which can differ from the change applied when the product's quantity
// was floored at zero.
type StockMove struct {
	ID        int
	ProductID int
	Delta     int
	Reason    string
	Date      time.Time
}

func (m StockMove) IsEntry() bool {
	return m.Delta > 0
}
