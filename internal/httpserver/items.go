package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/b4tman/stepik-storeapi/internal/domain"
	productsvc "github.com/b4tman/stepik-storeapi/internal/service/product"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createItemRequest struct {
	Credentials credentials     `json:"credentials"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type updateItemRequest struct {
	Credentials credentials      `json:"credentials"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

type itemsResponse struct {
	Items []itemResponse `json:"items"`
}

func listItemsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := deps.ProductSvc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		out := itemsResponse{Items: make([]itemResponse, 0, len(products))}
		for _, p := range products {
			out.Items = append(out.Items, toItemResponse(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func createItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
			return
		}
		ctx := c.Request.Context()
		if _, err := deps.AuthSvc.Check(ctx, req.Credentials.Email, req.Credentials.Password, domain.ActionCreateProduct); err != nil {
			respondError(c, err)
			return
		}
		p, err := deps.ProductSvc.Create(ctx, productsvc.CreateInput{
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  priceToCents(req.Price),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toItemResponse(*p))
	}
}

func updateItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
			return
		}
		ctx := c.Request.Context()
		if _, err := deps.AuthSvc.Check(ctx, req.Credentials.Email, req.Credentials.Password, domain.ActionUpdateProduct); err != nil {
			respondError(c, err)
			return
		}
		in := productsvc.UpdateInput{
			Name:        req.Name,
			Description: req.Description,
		}
		if req.Price != nil {
			cents := priceToCents(*req.Price)
			in.PriceCents = &cents
		}
		p, err := deps.ProductSvc.Update(ctx, c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toItemResponse(*p))
	}
}
