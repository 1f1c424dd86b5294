package product

import (
	"bancada/internal/store"

	"go.uber.org/zap"
)

func NewModule(s *store.Store, logger *zap.Logger) *Controller {
	return NewController(s, logger.Named("product"))
}
