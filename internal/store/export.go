package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bancada/internal/domain"
)

// NoStockMovesPlaceholder is what an export of an empty log reads as.
const NoStockMovesPlaceholder = "Sem movimentos"

// exportTimeLayout matches the millisecond UTC ISO-8601 form used by existing
// exports.
const exportTimeLayout = "2006-01-02T15:04:05.000Z"

// ExportStockMoves renders one `id,productId,delta,"reason",date` line per move.
// Quotes inside a reason are doubled.
func ExportStockMoves(moves []domain.StockMove) string {
	if len(moves) == 0 {
		return NoStockMovesPlaceholder
	}

	lines := make([]string, 0, len(moves))
	for _, m := range moves {
		lines = append(lines, fmt.Sprintf("%d,%d,%d,\"%s\",%s",
			m.ID, m.ProductID, m.Delta,
			strings.ReplaceAll(m.Reason, `"`, `""`),
			m.Date.UTC().Format(exportTimeLayout),
		))
	}
	return strings.Join(lines, "\n")
}

// ParseStockMoves reads an export back. The placeholder and blank text both
// parse to an empty log.
func ParseStockMoves(text string) ([]domain.StockMove, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == NoStockMovesPlaceholder {
		return []domain.StockMove{}, nil
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = 5

	moves := []domain.StockMove{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading stock move export: %w", err)
		}

		move, err := parseStockMoveRecord(record)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("parsing stock move on line %d: %w", line, err)
		}
		moves = append(moves, move)
	}
	return moves, nil
}

func parseStockMoveRecord(record []string) (domain.StockMove, error) {
	id, err := strconv.Atoi(record[0])
	if err != nil {
		return domain.StockMove{}, fmt.Errorf("invalid id %q: %w", record[0], err)
	}
	productID, err := strconv.Atoi(record[1])
	if err != nil {
		return domain.StockMove{}, fmt.Errorf("invalid productId %q: %w", record[1], err)
	}
	delta, err := strconv.Atoi(record[2])
	if err != nil {
		return domain.StockMove{}, fmt.Errorf("invalid delta %q: %w", record[2], err)
	}
	date, err := time.Parse(exportTimeLayout, record[4])
	if err != nil {
		return domain.StockMove{}, fmt.Errorf("invalid date %q: %w", record[4], err)
	}

	return domain.StockMove{
		ID:        id,
		ProductID: productID,
		Delta:     delta,
		Reason:    record[3],
		Date:      date,
	}, nil
}
