package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// respondError maps the domain error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse{Detail: "unauthorized user"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, errorResponse{Detail: "forbidden resource"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: "item not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusPreconditionRequired, errorResponse{Detail: "cart is empty"})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

type itemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

func toItemResponse(p domain.Product) itemResponse {
	return itemResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       centsToPrice(p.PriceCents),
	}
}

// centsToPrice renders stored integer cents as decimal currency units.
func centsToPrice(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// priceToCents converts a decimal price to integer cents. Sub-cent
// digits are truncated.
func priceToCents(price decimal.Decimal) int64 {
	return price.Shift(2).IntPart()
}
