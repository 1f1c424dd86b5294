package store

import (
	"fmt"
	"slices"
	"strings"

	"bancada/internal/domain"
	apperrors "bancada/internal/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type NewProduct struct {
	Name     string
	Qty      int
	Category string
	Price    *decimal.Decimal
	MinQty   *int
}

func (s *Store) AddProduct(in NewProduct) (domain.Product, error) {
	if err := validateNewProduct(in); err != nil {
		s.logger.Warn("product rejected", zap.String("name", in.Name), zap.Error(err))
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Product{
		ID:        s.nextID(),
		Name:      strings.TrimSpace(in.Name),
		Qty:       max(0, in.Qty),
		Category:  domain.OptionalText(in.Category),
		Price:     clonePtr(in.Price),
		MinQty:    clonePtr(in.MinQty),
		CreatedAt: s.now(),
	}
	s.products = slices.Insert(s.products, 0, p)

	s.logger.Info("product added", zap.Int("productId", p.ID), zap.String("name", p.Name), zap.Int("qty", p.Qty))
	return cloneProduct(p), nil
}

func validateNewProduct(in NewProduct) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(in.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if in.Price != nil && in.Price.IsNegative() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	if in.MinQty != nil && *in.MinQty < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "minQty",
			Message: "minQty must be non-negative",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError(details[0].Message, details...)
	}
	return nil
}

// Products lists every product, newest first.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.products, cloneProduct)
}

func (s *Store) Product(id int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.productIndex(id)
	if i < 0 {
		return domain.Product{}, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	return cloneProduct(s.products[i]), nil
}
