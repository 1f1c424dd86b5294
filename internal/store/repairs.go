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

type NewRepair struct {
	PhoneModel string
	Customer   string
	Problem    string
	Technician string
	Estimate   *decimal.Decimal
}

// AddRepair opens a ticket in Pendente. Blank customer, problem and technician
// fall back to their placeholders; a negative estimate is dropped rather than
// zeroed.
func (s *Store) AddRepair(in NewRepair) (domain.Repair, error) {
	model := strings.TrimSpace(in.PhoneModel)
	if model == "" {
		s.logger.Warn("repair rejected: blank phone model")
		return domain.Repair{}, apperrors.NewValidationError("phoneModel is required", apperrors.ValidationDetail{
			Field:   "phoneModel",
			Message: "phoneModel is required",
		})
	}

	estimate := clonePtr(in.Estimate)
	if estimate != nil && estimate.IsNegative() {
		estimate = nil
	}

	technician := strings.TrimSpace(in.Technician)
	if technician == "" {
		technician = domain.DefaultRepairTechnician
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Repair{
		ID:         s.nextID(),
		Customer:   orDefault(in.Customer, domain.DefaultRepairCustomer),
		PhoneModel: model,
		Problem:    orDefault(in.Problem, domain.DefaultRepairProblem),
		Status:     domain.RepairStatusPending,
		Technician: &technician,
		Estimate:   estimate,
		CreatedAt:  s.now(),
	}
	s.repairs = slices.Insert(s.repairs, 0, r)

	s.logger.Info("repair added", zap.Int("repairId", r.ID), zap.String("phoneModel", r.PhoneModel))
	return cloneRepair(r), nil
}

// SetRepairStatus assigns any known status directly; no transition order is
// enforced here.
func (s *Store) SetRepairStatus(repairID int, status domain.RepairStatus) (domain.Repair, error) {
	if !status.Valid() {
		s.logger.Warn("repair status rejected", zap.Int("repairId", repairID), zap.String("status", string(status)))
		return domain.Repair{}, apperrors.NewValidationError("unknown repair status", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("status must be one of %q, %q, %q", domain.RepairStatusPending, domain.RepairStatusInProgress, domain.RepairStatusDone),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateRepairStatus(repairID, func(domain.RepairStatus) domain.RepairStatus { return status })
}

// AdvanceRepairStatus moves a ticket one step along the counter cycle.
func (s *Store) AdvanceRepairStatus(repairID int) (domain.Repair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateRepairStatus(repairID, domain.RepairStatus.Next)
}

// updateRepairStatus must be called with the write lock held.
func (s *Store) updateRepairStatus(repairID int, next func(domain.RepairStatus) domain.RepairStatus) (domain.Repair, error) {
	i := s.repairIndex(repairID)
	if i < 0 {
		s.logger.Warn("repair status change on unknown repair", zap.Int("repairId", repairID))
		return domain.Repair{}, apperrors.NewNotFoundError(fmt.Sprintf("repair with id %d not found", repairID))
	}

	current := s.repairs[i]
	updated := current.WithStatus(next(current.Status))
	s.repairs[i] = updated

	s.logger.Info("repair status changed",
		zap.Int("repairId", repairID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	return cloneRepair(updated), nil
}

func (s *Store) Repairs() []domain.Repair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.repairs, cloneRepair)
}

func (s *Store) Repair(id int) (domain.Repair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.repairIndex(id)
	if i < 0 {
		return domain.Repair{}, apperrors.NewNotFoundError(fmt.Sprintf("repair with id %d not found", id))
	}
	return cloneRepair(s.repairs[i]), nil
}

func orDefault(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
