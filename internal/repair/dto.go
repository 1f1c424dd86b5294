package repair

import (
	"time"

	"bancada/internal/domain"
	"bancada/internal/dto"

	"github.com/shopspring/decimal"
)

type CreateRepairRequest struct {
	PhoneModel string         `json:"phoneModel"`
	Customer   string         `json:"customer"`
	Problem    string         `json:"problem"`
	Technician string         `json:"technician"`
	Estimate   dto.FlexString `json:"estimate"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type RepairDTO struct {
	ID         int              `json:"id"`
	Customer   string           `json:"customer"`
	PhoneModel string           `json:"phoneModel"`
	Problem    string           `json:"problem"`
	Status     string           `json:"status"`
	NextStatus string           `json:"nextStatus"`
	Technician *string          `json:"technician,omitempty"`
	Estimate   *decimal.Decimal `json:"estimate,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type ListRepairsResponse struct {
	Repairs []RepairDTO `json:"repairs"`
}

func ToRepairDTO(r domain.Repair) RepairDTO {
	return RepairDTO{
		ID:         r.ID,
		Customer:   r.Customer,
		PhoneModel: r.PhoneModel,
		Problem:    r.Problem,
		Status:     string(r.Status),
		NextStatus: string(r.Status.Next()),
		Technician: r.Technician,
		Estimate:   r.Estimate,
		CreatedAt:  r.CreatedAt,
	}
}

func ToRepairDTOs(repairs []domain.Repair) []RepairDTO {
	out := make([]RepairDTO, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, ToRepairDTO(r))
	}
	return out
}
