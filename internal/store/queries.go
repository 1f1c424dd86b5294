package store

import (
	"bancada/internal/domain"

	"github.com/shopspring/decimal"
)

// dashboardNameLimit caps the product names listed per dashboard warning.
const dashboardNameLimit = 3

type Dashboard struct {
	ProductCount     int
	SupplierCount    int
	RepairCount      int
	TotalStockValue  decimal.Decimal
	LowStockCount    int
	LowStockNames    []string
	RestockSoonCount int
	RestockSoonNames []string
	PendingRepairs   int
	Notifications    int
	// OldestPendingAgeDays is nil when no repair is pending.
	OldestPendingAgeDays *int
}

func (s *Store) LowStockItems() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lowStock()
}

func (s *Store) RestockSoonItems() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restockSoon()
}

func (s *Store) PendingRepairs() []domain.Repair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingRepairs()
}

// NotificationCount is the badge number: low stock products plus pending
// repairs. Restock-soon products are not counted.
func (s *Store) NotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lowStock()) + len(s.pendingRepairs())
}

func (s *Store) TotalStockValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalStockValue()
}

// OldestPendingRepairAgeDays returns the age in whole days of the oldest
// repair not yet Concluído, and false when there is none.
func (s *Store) OldestPendingRepairAgeDays() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.oldestPendingAgeDays()
}

func (s *Store) Dashboard() Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	low := s.lowStock()
	soon := s.restockSoon()
	pending := s.pendingRepairs()

	d := Dashboard{
		ProductCount:     len(s.products),
		SupplierCount:    len(s.suppliers),
		RepairCount:      len(s.repairs),
		TotalStockValue:  s.totalStockValue(),
		LowStockCount:    len(low),
		LowStockNames:    productNames(low, dashboardNameLimit),
		RestockSoonCount: len(soon),
		RestockSoonNames: productNames(soon, dashboardNameLimit),
		PendingRepairs:   len(pending),
		Notifications:    len(low) + len(pending),
	}
	if days, ok := s.oldestPendingAgeDays(); ok {
		d.OldestPendingAgeDays = &days
	}
	return d
}

// The helpers below expect the read lock to be held.

func (s *Store) lowStock() []domain.Product {
	out := []domain.Product{}
	for _, p := range s.products {
		if p.IsLowStock() {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

func (s *Store) restockSoon() []domain.Product {
	out := []domain.Product{}
	for _, p := range s.products {
		if p.NeedsRestockSoon() {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

func (s *Store) pendingRepairs() []domain.Repair {
	out := []domain.Repair{}
	for _, r := range s.repairs {
		if r.IsPending() {
			out = append(out, cloneRepair(r))
		}
	}
	return out
}

func (s *Store) totalStockValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.StockValue())
	}
	return total
}

func (s *Store) oldestPendingAgeDays() (int, bool) {
	var oldest *domain.Repair
	for i := range s.repairs {
		r := &s.repairs[i]
		if !r.IsPending() {
			continue
		}
		if oldest == nil || r.CreatedAt.Before(oldest.CreatedAt) {
			oldest = r
		}
	}
	if oldest == nil {
		return 0, false
	}
	return oldest.AgeDays(s.now()), true
}

func productNames(products []domain.Product, limit int) []string {
	names := make([]string, 0, min(limit, len(products)))
	for _, p := range products {
		if len(names) == limit {
			break
		}
		names = append(names, p.Name)
	}
	return names
}
