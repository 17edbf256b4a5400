package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/priyodas12/orders-service/internal/config"
	"github.com/priyodas12/orders-service/internal/db"
	"github.com/priyodas12/orders-service/internal/httpx"
	"github.com/priyodas12/orders-service/internal/logging"
	ord "github.com/priyodas12/orders-service/internal/order"
)

func main() {
	log := logging.GetSugaredLogger()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("load config", "err", err)
	}
	log.Infow("config loaded", "addr", cfg.Addr, "statuses", cfg.OrderStatuses)

	if err := db.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		log.Fatalw("migrate", "err", err)
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("open database", "err", err)
	}
	defer pool.Close()

	repo := ord.NewPGRepo(pool)

	if cfg.SeedOrders > 0 {
		n, err := ord.Seed(ctx, repo, cfg.SeedOrders, cfg.OrderStatuses)
		if err != nil {
			log.Fatalw("seed demo orders", "err", err)
		}
		log.Infow("seeded demo orders", "count", n)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(repo, cfg.OrderStatuses, log),
	}

	go func() {
		log.Infow("order-service listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("listen", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown", "err", err)
	}
	log.Info("order-service stopped")
}

func newRouter(repo ord.Repository, statuses []string, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log))

	r.GET("/", rootHandler())
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/orders", listOrdersHandler(repo))
	r.GET("/orders/customer", getOrderByCustomerHandler(repo))
	r.GET("/orders/:id", getOrderHandler(repo))
	r.POST("/orders", createOrderHandler(repo, statuses))
	r.PUT("/orders", updateOrderHandler(repo, statuses))
	r.DELETE("/orders/:id", deleteOrderHandler(repo))

	return r
}
