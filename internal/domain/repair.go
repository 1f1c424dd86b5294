package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RepairStatus string

const (
	RepairStatusPending    RepairStatus = "Pendente"
	RepairStatusInProgress RepairStatus = "Em Progresso"
	RepairStatusDone       RepairStatus = "Concluído"
)

// Placeholders stored when the corresponding repair field is left blank.
const (
	DefaultRepairCustomer   = "Cliente"
	DefaultRepairProblem    = "-"
	DefaultRepairTechnician = "Técnico"
)

func (s RepairStatus) Valid() bool {
	switch s {
	case RepairStatusPending, RepairStatusInProgress, RepairStatusDone:
		return true
	}
	return false
}

// Next follows the counter cycle Pendente -> Em Progresso -> Concluído -> Pendente.
// Unknown values restart the cycle at Pendente.
func (s RepairStatus) Next() RepairStatus {
	switch s {
	case RepairStatusPending:
		return RepairStatusInProgress
	case RepairStatusInProgress:
		return RepairStatusDone
	default:
		return RepairStatusPending
	}
}

type Repair struct {
	ID         int
	Customer   string
	PhoneModel string
	Problem    string
	Status     RepairStatus
	Technician *string
	Estimate   *decimal.Decimal
	CreatedAt  time.Time
}

func (r Repair) IsPending() bool {
	return r.Status != RepairStatusDone
}

func (r Repair) WithStatus(status RepairStatus) Repair {
	r.Status = status
	return r
}

// AgeDays is the number of whole days elapsed between CreatedAt and now.
func (r Repair) AgeDays(now time.Time) int {
	elapsed := now.Sub(r.CreatedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}
