package supplier

import (
	"net/http"
	"time"

	"bancada/internal/commons"
	"bancada/internal/domain"
	"bancada/internal/store"

	"go.uber.org/zap"
)

type Store interface {
	AddSupplier(in store.NewSupplier) (domain.Supplier, error)
	Suppliers() []domain.Supplier
}

type CreateSupplierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type SupplierDTO struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListSuppliersResponse struct {
	Suppliers []SupplierDTO `json:"suppliers"`
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
	return NewController(s, logger.Named("supplier"))
}

func (c *Controller) HandleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers := c.store.Suppliers()
	out := make([]SupplierDTO, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierDTO(s))
	}
	c.respond.JSON(w, http.StatusOK, ListSuppliersResponse{Suppliers: out})
}

func (c *Controller) HandleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req CreateSupplierRequest
	if !c.respond.DecodeJSON(w, r, &req) {
		return
	}

	s, err := c.store.AddSupplier(store.NewSupplier{Name: req.Name, Phone: req.Phone})
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	c.respond.JSON(w, http.StatusCreated, toSupplierDTO(s))
}

func toSupplierDTO(s domain.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}
