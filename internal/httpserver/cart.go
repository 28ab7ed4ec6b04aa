package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

type addToCartRequest struct {
	Email  string `json:"email"`
	ItemID string `json:"item_id"`
}

type cartResponse struct {
	Email string         `json:"email"`
	Items []itemResponse `json:"items"`
}

// toCartResponse resolves the cart's product ids against the catalog.
// Ids that no longer resolve are skipped rather than failing the view.
func toCartResponse(ctx context.Context, deps Deps, cart *domain.Cart) (cartResponse, error) {
	out := cartResponse{Email: cart.Email, Items: make([]itemResponse, 0, len(cart.ItemIDs))}
	for _, id := range cart.ItemIDs {
		p, err := deps.ProductSvc.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return cartResponse{}, err
		}
		out.Items = append(out.Items, toItemResponse(*p))
	}
	return out, nil
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		ctx := c.Request.Context()
		cart, err := deps.CartSvc.Get(ctx, email)
		if err != nil {
			respondError(c, err)
			return
		}
		resp, err := toCartResponse(ctx, deps, cart)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func addToCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.ItemID) == "" {
			c.JSON(http.StatusBadRequest, errorResponse{Detail: "email and item_id required"})
			return
		}
		ctx := c.Request.Context()
		cart, err := deps.CartSvc.Add(ctx, req.Email, req.ItemID)
		if err != nil {
			respondError(c, err)
			return
		}
		resp, err := toCartResponse(ctx, deps, cart)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func removeFromCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		itemID := c.Param("id")
		ctx := c.Request.Context()
		cart, err := deps.CartSvc.Remove(ctx, email, itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		resp, err := toCartResponse(ctx, deps, cart)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
