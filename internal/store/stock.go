package store

import (
	"fmt"
	"slices"
	"strings"

	"bancada/internal/domain"
	apperrors "bancada/internal/errors"

	"go.uber.org/zap"
)

// StockMoveEntry is a logged movement joined with the current name of its
// product. ProductName is nil when the product id no longer resolves.
type StockMoveEntry struct {
	Move        domain.StockMove
	ProductName *string
}

// AdjustStock applies delta to a product's quantity, flooring the result at
// zero and saturating at the int range, and logs the move. The move keeps the
// requested delta even when a bound made the applied change smaller. Line
// breaks in the reason are stored as "\n".
func (s *Store) AdjustStock(productID int, delta int, reason string) (domain.StockMove, error) {
	if delta == 0 {
		s.logger.Warn("stock adjustment rejected: zero delta", zap.Int("productId", productID))
		return domain.StockMove{}, apperrors.NewValidationError("delta must not be zero", apperrors.ValidationDetail{
			Field:   "delta",
			Message: "delta must be a non-zero integer",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(productID)
	if i < 0 {
		s.logger.Warn("stock adjustment on unknown product", zap.Int("productId", productID), zap.Int("delta", delta))
		return domain.StockMove{}, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", productID))
	}

	before := s.products[i]
	after := before.AdjustedBy(delta)

	reason = normalizeReason(reason)
	if reason == "" {
		reason = domain.DefaultStockMoveReason
	}

	move := domain.StockMove{
		ID:        s.nextID(),
		ProductID: productID,
		Delta:     delta,
		Reason:    reason,
		Date:      s.now(),
	}

	s.products[i] = after
	s.moves = slices.Insert(s.moves, 0, move)

	fields := []zap.Field{
		zap.Int("productId", productID),
		zap.Int("delta", delta),
		zap.Int("qtyBefore", before.Qty),
		zap.Int("qtyAfter", after.Qty),
		zap.String("reason", reason),
	}
	if applied := after.Qty - before.Qty; applied != delta {
		s.logger.Warn("stock adjustment clamped", append(fields, zap.Int("applied", applied))...)
	} else {
		s.logger.Info("stock adjusted", fields...)
	}

	return move, nil
}

// StockMoves lists the movement log, newest first.
func (s *Store) StockMoves() []domain.StockMove {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.moves)
}

func (s *Store) StockMoveHistory() []StockMoveEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]StockMoveEntry, 0, len(s.moves))
	for _, m := range s.moves {
		entry := StockMoveEntry{Move: m}
		if i := s.productIndex(m.ProductID); i >= 0 {
			name := s.products[i].Name
			entry.ProductName = &name
		}
		entries = append(entries, entry)
	}
	return entries
}

// ExportStockMoves renders the current movement log in the export format.
func (s *Store) ExportStockMoves() string {
	return ExportStockMoves(s.StockMoves())
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeReason trims the reason and folds CRLF and CR into LF, the only
// line break the export reads back unchanged.
func normalizeReason(reason string) string {
	return lineBreaks.Replace(strings.TrimSpace(reason))
}
