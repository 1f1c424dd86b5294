package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"bancada/internal/domain"
	"bancada/internal/store"

	"github.com/shopspring/decimal"
)

type seedFile struct {
	Suppliers []seedSupplier `yaml:"suppliers"`
	Products  []seedProduct  `yaml:"products"`
	Repairs   []seedRepair   `yaml:"repairs"`
}

type seedSupplier struct {
	ID        int        `yaml:"id"`
	Name      string     `yaml:"name"`
	Phone     string     `yaml:"phone"`
	CreatedAt *time.Time `yaml:"createdAt"`
}

type seedProduct struct {
	ID        int              `yaml:"id"`
	Name      string           `yaml:"name"`
	Qty       int              `yaml:"qty"`
	Category  string           `yaml:"category"`
	Price     *decimal.Decimal `yaml:"price"`
	MinQty    *int             `yaml:"minQty"`
	CreatedAt *time.Time       `yaml:"createdAt"`
}

type seedRepair struct {
	ID         int              `yaml:"id"`
	Customer   string           `yaml:"customer"`
	PhoneModel string           `yaml:"phoneModel"`
	Problem    string           `yaml:"problem"`
	Status     string           `yaml:"status"`
	Technician string           `yaml:"technician"`
	Estimate   *decimal.Decimal `yaml:"estimate"`
	CreatedAt  *time.Time       `yaml:"createdAt"`
}

// LoadSeedFile reads a YAML dataset. Entries without createdAt are stamped
// with now and repairs without a status start as Pendente.
func LoadSeedFile(path string, now time.Time) (store.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Seed{}, fmt.Errorf("reading seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return store.Seed{}, fmt.Errorf("parsing seed file: %w", err)
	}

	return f.toSeed(now), nil
}

func (f seedFile) toSeed(now time.Time) store.Seed {
	stamp := func(t *time.Time) time.Time {
		if t == nil {
			return now
		}
		return *t
	}

	seed := store.Seed{
		Suppliers: make([]domain.Supplier, 0, len(f.Suppliers)),
		Products:  make([]domain.Product, 0, len(f.Products)),
		Repairs:   make([]domain.Repair, 0, len(f.Repairs)),
	}

	for _, s := range f.Suppliers {
		seed.Suppliers = append(seed.Suppliers, domain.Supplier{
			ID:        s.ID,
			Name:      s.Name,
			Phone:     domain.OptionalText(s.Phone),
			CreatedAt: stamp(s.CreatedAt),
		})
	}

	for _, p := range f.Products {
		seed.Products = append(seed.Products, domain.Product{
			ID:        p.ID,
			Name:      p.Name,
			Qty:       p.Qty,
			Category:  domain.OptionalText(p.Category),
			Price:     p.Price,
			MinQty:    p.MinQty,
			CreatedAt: stamp(p.CreatedAt),
		})
	}

	for _, r := range f.Repairs {
		status := domain.RepairStatus(r.Status)
		if status == "" {
			status = domain.RepairStatusPending
		}
		seed.Repairs = append(seed.Repairs, domain.Repair{
			ID:         r.ID,
			Customer:   orDefault(r.Customer, domain.DefaultRepairCustomer),
			PhoneModel: r.PhoneModel,
			Problem:    orDefault(r.Problem, domain.DefaultRepairProblem),
			Status:     status,
			Technician: domain.OptionalText(r.Technician),
			Estimate:   r.Estimate,
			CreatedAt:  stamp(r.CreatedAt),
		})
	}

	return seed
}

func orDefault(s, fallback string) string {
	if t := domain.OptionalText(s); t != nil {
		return *t
	}
	return fallback
}
