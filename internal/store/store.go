// Package store holds the shop's in-memory domain state: products, suppliers,
// repair tickets and the stock movement log. Every collection is kept newest
// first and every command either fully applies or leaves the state untouched.
package store

import (
	"sync"
	"time"

	"bancada/internal/domain"

	"go.uber.org/zap"
)

type Store struct {
	mu sync.RWMutex

	products  []domain.Product
	suppliers []domain.Supplier
	repairs   []domain.Repair
	moves     []domain.StockMove

	// lastID is shared by every entity kind and only ever grows.
	lastID int

	now    func() time.Time
	logger *zap.Logger
}

// New returns an empty store. A nil clock falls back to time.Now.
func New(logger *zap.Logger, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		now:    now,
		logger: logger,
	}
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int {
	s.lastID++
	return s.lastID
}

func (s *Store) reserveID(id int) {
	if id > s.lastID {
		s.lastID = id
	}
}

func (s *Store) productIndex(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) repairIndex(id int) int {
	for i, r := range s.repairs {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneProduct(p domain.Product) domain.Product {
	p.Category = clonePtr(p.Category)
	p.Price = clonePtr(p.Price)
	p.MinQty = clonePtr(p.MinQty)
	return p
}

func cloneSupplier(s domain.Supplier) domain.Supplier {
	s.Phone = clonePtr(s.Phone)
	return s
}

func cloneRepair(r domain.Repair) domain.Repair {
	r.Technician = clonePtr(r.Technician)
	r.Estimate = clonePtr(r.Estimate)
	return r
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, clone(item))
	}
	return out
}
