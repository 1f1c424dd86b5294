package repair

import (
	"net/http"

	"bancada/internal/commons"
	"bancada/internal/domain"
	"bancada/internal/store"

	"go.uber.org/zap"
)

type Store interface {
	AddRepair(in store.NewRepair) (domain.Repair, error)
	Repairs() []domain.Repair
	SetRepairStatus(repairID int, status domain.RepairStatus) (domain.Repair, error)
	AdvanceRepairStatus(repairID int) (domain.Repair, error)
}

type Controller struct {
	store   Store
	respond *commons.Responder
}

func NewController(s Store, logger *zap.Logger) *Controller {
	return &Controller{
		store:   s,
		respond: commons.NewResponder(logger),
	}
}

func NewModule(s *store.Store, logger *zap.Logger) *Controller {
	return NewController(s, logger.Named("repair"))
}

func (c *Controller) HandleListRepairs(w http.ResponseWriter, r *http.Request) {
	c.respond.JSON(w, http.StatusOK, ListRepairsResponse{Repairs: ToRepairDTOs(c.store.Repairs())})
}

func (c *Controller) HandleCreateRepair(w http.ResponseWriter, r *http.Request) {
	var req CreateRepairRequest
	if !c.respond.DecodeJSON(w, r, &req) {
		return
	}

	rep, err := c.store.AddRepair(store.NewRepair{
		PhoneModel: req.PhoneModel,
		Customer:   req.Customer,
		Problem:    req.Problem,
		Technician: req.Technician,
		Estimate:   domain.ParseAmount(req.Estimate.String()),
	})
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	c.respond.JSON(w, http.StatusCreated, ToRepairDTO(rep))
}

func (c *Controller) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := c.respond.IDParam(w, r, "repairId")
	if !ok {
		return
	}

	var req SetStatusRequest
	if !c.respond.DecodeJSON(w, r, &req) {
		return
	}

	rep, err := c.store.SetRepairStatus(id, domain.RepairStatus(req.Status))
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	c.respond.JSON(w, http.StatusOK, ToRepairDTO(rep))
}

func (c *Controller) HandleAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := c.respond.IDParam(w, r, "repairId")
	if !ok {
		return
	}

	rep, err := c.store.AdvanceRepairStatus(id)
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	c.respond.JSON(w, http.StatusOK, ToRepairDTO(rep))
}
