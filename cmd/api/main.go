package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/b4tman/stepik-storeapi/internal/config"
	"github.com/b4tman/stepik-storeapi/internal/db"
	"github.com/b4tman/stepik-storeapi/internal/httpserver"
	cartrepo "github.com/b4tman/stepik-storeapi/internal/repository/cart"
	orderrepo "github.com/b4tman/stepik-storeapi/internal/repository/order"
	productrepo "github.com/b4tman/stepik-storeapi/internal/repository/product"
	userrepo "github.com/b4tman/stepik-storeapi/internal/repository/user"
	"github.com/b4tman/stepik-storeapi/internal/seed"
	authsvc "github.com/b4tman/stepik-storeapi/internal/service/auth"
	cartsvc "github.com/b4tman/stepik-storeapi/internal/service/cart"
	ordersvc "github.com/b4tman/stepik-storeapi/internal/service/order"
	productsvc "github.com/b4tman/stepik-storeapi/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var pool *pgxpool.Pool
	var users userrepo.Repository
	var products productrepo.Repository
	var carts cartrepo.Repository
	var orders orderrepo.Repository

	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()

		users = userrepo.NewPostgres(pool, logger)
		products = productrepo.NewPostgres(pool, logger)
		carts = cartrepo.NewPostgres(pool)
		orders = orderrepo.NewPostgres(pool)
		logger.Printf("using postgres backend")
	} else {
		users = userrepo.NewMemory(seed.Users())
		memProducts := productrepo.NewMemory()
		for _, p := range seed.Products() {
			if _, err := memProducts.Create(ctx, p); err != nil {
				logger.Fatalf("seed product %s: %v", p.Name, err)
			}
		}
		products = memProducts
		carts = cartrepo.NewMemory()
		orders = orderrepo.NewMemory()
		logger.Printf("using in-memory backend")
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			cancel()
			logger.Fatalf("connect to redis: %v", err)
		}
		cancel()
		defer client.Close()
		carts = cartrepo.NewRedis(client)
		logger.Printf("using redis cart backend at %s", cfg.RedisAddr)
	}

	authService := authsvc.New(users)
	productService := productsvc.New(products)
	cartService := cartsvc.New(carts, products)
	orderService := ordersvc.New(cartService, productService, orders)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		ProductSvc: productService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
		AuthSvc:    authService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
