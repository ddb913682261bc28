package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marketplace_escrow/internal/adapter/http/handlers"
	"marketplace_escrow/internal/adapter/http/middleware"
	"marketplace_escrow/internal/infrastructure/config"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownGrace = 10 * time.Second

// Dependencies is everything the HTTP layer needs from the rest of the app.
type Dependencies struct {
	Needs          usecase.INeedUseCase
	Offers         usecase.IOfferUseCase
	Orders         usecase.IOrderUseCase
	Disputes       usecase.IDisputeUseCase
	Tokens         middleware.TokenValidator
	Log            *logger.Logger
	RequestTimeout time.Duration
}

// Run wires the application from cfg and serves until SIGINT/SIGTERM.
func Run(cfg config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http] listening", "addr", srv.Addr, "storage", cfg.StorageDriver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine. Everything under /v1 except ping requires
// a bearer token.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Log),
		middleware.Recovery(deps.Log),
	)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	private := v1.Group("")
	private.Use(middleware.Auth(deps.Tokens))
	if deps.RequestTimeout > 0 {
		private.Use(middleware.Timeout(deps.RequestTimeout))
	}
	addMarketplaceRoutes(private, marketplaceHandlers{
		needs:    handlers.NewNeedHandler(deps.Needs),
		offers:   handlers.NewOfferHandler(deps.Offers),
		orders:   handlers.NewOrderHandler(deps.Orders),
		disputes: handlers.NewDisputeHandler(deps.Disputes),
	})
	return router
}
