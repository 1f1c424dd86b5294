package store

import (
	"slices"
	"strings"

	"bancada/internal/domain"
	apperrors "bancada/internal/errors"

	"go.uber.org/zap"
)

type NewSupplier struct {
	Name  string
	Phone string
}

func (s *Store) AddSupplier(in NewSupplier) (domain.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		s.logger.Warn("supplier rejected: blank name")
		return domain.Supplier{}, apperrors.NewValidationError("name is required", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sup := domain.Supplier{
		ID:        s.nextID(),
		Name:      name,
		Phone:     domain.OptionalText(in.Phone),
		CreatedAt: s.now(),
	}
	s.suppliers = slices.Insert(s.suppliers, 0, sup)

	s.logger.Info("supplier added", zap.Int("supplierId", sup.ID), zap.String("name", sup.Name))
	return cloneSupplier(sup), nil
}

func (s *Store) Suppliers() []domain.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.suppliers, cloneSupplier)
}
