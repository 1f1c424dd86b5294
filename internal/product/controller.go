package product

import (
	"net/http"
	"strconv"
	"strings"

	"bancada/internal/commons"
	"bancada/internal/domain"
	apperrors "bancada/internal/errors"
	"bancada/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Controller struct {
	store   Store
	respond *commons.Responder
	logger  *zap.Logger
}

func NewController(s Store, logger *zap.Logger) *Controller {
	return &Controller{
		store:   s,
		respond: commons.NewResponder(logger),
		logger:  logger,
	}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	c.respond.JSON(w, http.StatusOK, ListProductsResponse{Products: ToProductDTOs(c.store.Products())})
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := c.respond.IDParam(w, r, "productId")
	if !ok {
		return
	}

	p, err := c.store.Product(id)
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	c.respond.JSON(w, http.StatusOK, ToProductDTO(p))
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !c.respond.DecodeJSON(w, r, &req) {
		return
	}

	in, err := c.toNewProduct(req)
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	p, err := c.store.AddProduct(in)
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	c.respond.JSON(w, http.StatusCreated, ToProductDTO(p))
}

// toNewProduct coerces qty like the counter form does but rejects a price or
// minimum that was sent and cannot be read.
func (c *Controller) toNewProduct(req CreateProductRequest) (store.NewProduct, error) {
	in := store.NewProduct{
		Name:     req.Name,
		Qty:      domain.ParseQty(req.Qty.String()),
		Category: req.Category,
	}

	var details []apperrors.ValidationDetail

	if req.Price.IsSet() {
		price, err := decimal.NewFromString(strings.TrimSpace(req.Price.String()))
		if err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "price",
				Message: "price must be a number",
			})
		} else {
			in.Price = &price
		}
	}

	if req.MinQty.IsSet() {
		minQty, err := strconv.Atoi(strings.TrimSpace(req.MinQty.String()))
		if err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "minQty",
				Message: "minQty must be an integer",
			})
		} else {
			in.MinQty = &minQty
		}
	}

	if len(details) > 0 {
		return store.NewProduct{}, apperrors.NewValidationError("validation failed", details...)
	}
	return in, nil
}

func (c *Controller) HandleAdjustStock(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.respond.IDParam(w, r, "productId")
	if !ok {
		return
	}

	var req AdjustStockRequest
	if !c.respond.DecodeJSON(w, r, &req) {
		return
	}

	move, err := c.store.AdjustStock(productID, domain.ParseDelta(req.Delta.String()), req.Reason)
	if err != nil {
		c.respond.Error(w, err)
		return
	}

	var productName *string
	if p, err := c.store.Product(productID); err == nil {
		productName = &p.Name
	} else {
		c.logger.Warn("adjusted product no longer resolves", zap.Int("productId", productID), zap.Error(err))
	}

	c.respond.JSON(w, http.StatusCreated, toStockMoveDTO(move, productName))
}

func (c *Controller) HandleListStockMoves(w http.ResponseWriter, r *http.Request) {
	c.respond.JSON(w, http.StatusOK, ListStockMovesResponse{Moves: toStockMoveDTOs(c.store.StockMoveHistory())})
}

func (c *Controller) HandleExportStockMoves(w http.ResponseWriter, r *http.Request) {
	c.respond.Text(w, http.StatusOK, c.store.ExportStockMoves())
}
