package store

import (
	"fmt"
	"strings"
	"time"

	"bancada/internal/domain"
	apperrors "bancada/internal/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seed is an initial dataset. Entities keep their ids and are stored in the
// given order.
type Seed struct {
	Suppliers []domain.Supplier
	Products  []domain.Product
	Repairs   []domain.Repair
}

// DefaultSeed is the shop's startup dataset, timestamped relative to now.
func DefaultSeed(now time.Time) Seed {
	ago := func(ms int64) time.Time { return now.Add(-time.Duration(ms) * time.Millisecond) }
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }
	money := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	return Seed{
		Suppliers: []domain.Supplier{
			{ID: 1, Name: "Fornecedor A", Phone: str("1199999"), CreatedAt: ago(500000)},
			{ID: 2, Name: "Fornecedor B", Phone: str("1188888"), CreatedAt: ago(400000)},
		},
		Products: []domain.Product{
			{ID: 101, Name: "Tela iPhone X", Qty: 5, Category: str("Telas"), Price: money(120), MinQty: num(3), CreatedAt: ago(300000)},
			{ID: 102, Name: "Bateria Genérica", Qty: 15, Category: str("Baterias"), Price: money(25), MinQty: num(5), CreatedAt: ago(200000)},
		},
		Repairs: []domain.Repair{
			{
				ID:         201,
				Customer:   "João",
				PhoneModel: "iPhone X",
				Problem:    "Tela trincada",
				Status:     domain.RepairStatusPending,
				Technician: str("Carlos"),
				Estimate:   money(150),
				CreatedAt:  ago(150000),
			},
		},
	}
}

// Seed loads an initial dataset into an empty store. The whole dataset is
// validated first; on error nothing is loaded.
func (s *Store) Seed(seed Seed) error {
	if err := validateSeed(seed); err != nil {
		s.logger.Warn("seed rejected", zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products)+len(s.suppliers)+len(s.repairs)+len(s.moves) > 0 {
		return apperrors.NewValidationError("store already holds data")
	}

	s.suppliers = cloneAll(seed.Suppliers, cloneSupplier)
	s.products = cloneAll(seed.Products, cloneProduct)
	s.repairs = cloneAll(seed.Repairs, cloneRepair)

	for _, sup := range s.suppliers {
		s.reserveID(sup.ID)
	}
	for _, p := range s.products {
		s.reserveID(p.ID)
	}
	for _, r := range s.repairs {
		s.reserveID(r.ID)
	}

	s.logger.Info("store seeded",
		zap.Int("suppliers", len(s.suppliers)),
		zap.Int("products", len(s.products)),
		zap.Int("repairs", len(s.repairs)),
	)
	return nil
}

func validateSeed(seed Seed) error {
	var details []apperrors.ValidationDetail
	add := func(field, msg string) {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: msg})
	}

	seen := map[int]string{}
	checkID := func(field string, id int) {
		if id <= 0 {
			add(field+".id", "id must be a positive integer")
			return
		}
		if other, dup := seen[id]; dup {
			add(field+".id", fmt.Sprintf("id %d already used by %s", id, other))
			return
		}
		seen[id] = field
	}

	for i, sup := range seed.Suppliers {
		field := fmt.Sprintf("suppliers[%d]", i)
		checkID(field, sup.ID)
		if strings.TrimSpace(sup.Name) == "" {
			add(field+".name", "name is required")
		}
	}

	for i, p := range seed.Products {
		field := fmt.Sprintf("products[%d]", i)
		checkID(field, p.ID)
		if strings.TrimSpace(p.Name) == "" {
			add(field+".name", "name is required")
		}
		if p.Qty < 0 {
			add(field+".qty", "qty must be non-negative")
		}
		if p.Price != nil && p.Price.IsNegative() {
			add(field+".price", "price must be non-negative")
		}
		if p.MinQty != nil && *p.MinQty < 0 {
			add(field+".minQty", "minQty must be non-negative")
		}
	}

	for i, r := range seed.Repairs {
		field := fmt.Sprintf("repairs[%d]", i)
		checkID(field, r.ID)
		if strings.TrimSpace(r.PhoneModel) == "" {
			add(field+".phoneModel", "phoneModel is required")
		}
		if !r.Status.Valid() {
			add(field+".status", "unknown repair status")
		}
		if r.Estimate != nil && r.Estimate.IsNegative() {
			add(field+".estimate", "estimate must be non-negative")
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid seed data", details...)
	}
	return nil
}
