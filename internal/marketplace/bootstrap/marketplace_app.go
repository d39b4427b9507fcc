package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/application"
	httpwrap "github.com/davidtimmons/pragmatic-architecture/internal/marketplace/infrastructure/http"
	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/infrastructure/postgres"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/logging"
)

const (
	shutdownTimeout = 5 * time.Second
)

type MarketplaceApp struct {
	cfg    MarketplaceConfig
	logger logging.Logger

	server *http.Server
}

func NewMarketplaceApp(cfg MarketplaceConfig, logger logging.Logger) *MarketplaceApp {
	return &MarketplaceApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *MarketplaceApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	connector := database.NewPgxConnector(cfg.DbSettings.GetUrl())
	store := database.NewStore(connector, logger, cfg.QueryTimeout)

	userService := postgres.NewUserService(store)
	widgetService := postgres.NewWidgetService(store)
	feeService := postgres.NewFeeService(store)
	transactionService := postgres.NewTransactionService(store)

	purchaseCase := application.NewPurchaseCase(userService, widgetService, feeService, transactionService)
	summaryCase := application.NewAccountSummaryCase(userService, widgetService, transactionService)

	userHandler := httpwrap.NewUserHandler(userService, summaryCase)
	widgetHandler := httpwrap.NewWidgetHandler(widgetService, purchaseCase)

	router := gin.Default()
	router.Use(httpwrap.NewRequestIdMiddleware(logger))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:"+httpwrap.UserIdKey, userHandler.GetUser)
			users.PATCH("/:"+httpwrap.UserIdKey, userHandler.SetBalance)
			users.GET("/:"+httpwrap.UserIdKey+"/summary", userHandler.GetSummary)
		}

		widgets := api.Group("/widgets")
		{
			widgets.POST("", widgetHandler.CreateWidget)
			widgets.GET("/:"+httpwrap.WidgetIdKey, widgetHandler.GetWidget)
			widgets.POST("/:"+httpwrap.WidgetIdKey, widgetHandler.PurchaseWidget)
		}
	}

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *MarketplaceApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}
