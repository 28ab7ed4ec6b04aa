package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/b4tman/stepik-storeapi/internal/domain"
	productsvc "github.com/b4tman/stepik-storeapi/internal/service/product"
)

// ProductService is the catalog surface the handlers need.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.UpdateInput) (*domain.Product, error)
}

// CartService mutates and reads per-email carts.
type CartService interface {
	Get(ctx context.Context, email string) (*domain.Cart, error)
	Add(ctx context.Context, email, productID string) (*domain.Cart, error)
	Remove(ctx context.Context, email, productID string) (*domain.Cart, error)
}

// OrderService places orders from carts.
type OrderService interface {
	Checkout(ctx context.Context, email string) (*domain.Order, error)
}

// AuthService authenticates credentials and authorizes actions.
type AuthService interface {
	Check(ctx context.Context, email, password string, action domain.Action) (domain.Role, error)
}

// Deps carries the services the router needs.
type Deps struct {
	ProductSvc ProductService
	CartSvc    CartService
	OrderSvc   OrderService
	AuthSvc    AuthService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.ProductSvc == nil || deps.CartSvc == nil || deps.OrderSvc == nil || deps.AuthSvc == nil {
		return nil, errors.New("httpserver: missing dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/items", listItemsHandler(deps))
	router.POST("/items", createItemHandler(deps))
	router.PUT("/items/:id", updateItemHandler(deps))

	router.GET("/cart/:email", getCartHandler(deps))
	router.POST("/cart", addToCartHandler(deps))
	router.DELETE("/cart/:email/:id", removeFromCartHandler(deps))

	router.POST("/checkout", checkoutHandler(deps))

	return router, nil
}
