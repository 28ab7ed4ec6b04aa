package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

type checkoutRequest struct {
	Email string `json:"email"`
}

type orderResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Items []itemResponse  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]itemResponse, 0, len(o.Items))
	for _, p := range o.Items {
		items = append(items, toItemResponse(p))
	}
	return orderResponse{
		ID:    o.ID,
		Email: o.Email,
		Items: items,
		Total: centsToPrice(o.TotalCents),
	}
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			c.JSON(http.StatusBadRequest, errorResponse{Detail: "email required"})
			return
		}
		o, err := deps.OrderSvc.Checkout(c.Request.Context(), req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(o))
	}
}
