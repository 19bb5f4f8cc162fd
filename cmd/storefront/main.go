package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartApi "github.com/ridloal/storefront-bff/internal/cart/api"
	cartService "github.com/ridloal/storefront-bff/internal/cart/service"
	catalogApi "github.com/ridloal/storefront-bff/internal/catalog/api"
	catalogService "github.com/ridloal/storefront-bff/internal/catalog/service"
	checkoutApi "github.com/ridloal/storefront-bff/internal/checkout/api"
	checkoutService "github.com/ridloal/storefront-bff/internal/checkout/service"
	currencyApi "github.com/ridloal/storefront-bff/internal/currency/api"
	currencyService "github.com/ridloal/storefront-bff/internal/currency/service"
	gradeApi "github.com/ridloal/storefront-bff/internal/grade/api"
	gradeService "github.com/ridloal/storefront-bff/internal/grade/service"
	"github.com/ridloal/storefront-bff/internal/platform/config"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
	sessionRepository "github.com/ridloal/storefront-bff/internal/session/repository"
	sessionService "github.com/ridloal/storefront-bff/internal/session/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadStorefrontConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Init(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting Storefront BFF...", zap.String("store_api", cfg.StoreAPI.BaseURL))

	storeClient := storeapi.NewHTTPClient(cfg.StoreAPI.BaseURL, storeapi.Options{
		Timeout:   cfg.StoreAPI.Timeout,
		RateLimit: cfg.StoreAPI.RateLimit,
		RateBurst: cfg.StoreAPI.RateBurst,
	})

	sessionRepo := sessionRepository.NewMemorySessionRepository()
	sessSvc, err := sessionService.NewSessionService(sessionRepo, storeClient, sessionService.Options{
		Secret:              cfg.Session.Secret,
		IdleTimeout:         cfg.Session.IdleTimeout,
		ReaperSpec:          cfg.Session.ReaperSpec,
		ExchangeRateTimeout: cfg.Session.ExchangeRateTimeout,
	})
	if err != nil {
		logger.Fatal("Failed to initialize session service", err)
	}
	defer sessSvc.Stop()

	catalogHandler := catalogApi.NewCatalogHandler(catalogService.NewCatalogService(storeClient))
	gradeHandler := gradeApi.NewGradeHandler(gradeService.NewGradeService(storeClient))
	cartHandler := cartApi.NewCartHandler(cartService.NewCartService(storeClient))
	currencyHandler := currencyApi.NewCurrencyHandler(currencyService.NewCurrencyService())
	checkoutHandler := checkoutApi.NewCheckoutHandler(checkoutService.NewCheckoutService(storeClient, checkoutService.Options{
		FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
		RedirectDelay:         cfg.Checkout.RedirectDelay,
	}))

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinLogger())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	apiV1.Use(sessionApi.Middleware(sessSvc, cfg.Session.CookieName, cfg.Session.IdleTimeout))
	{
		catalogHandler.RegisterRoutes(apiV1)
		gradeHandler.RegisterRoutes(apiV1)
		cartHandler.RegisterRoutes(apiV1)
		currencyHandler.RegisterRoutes(apiV1)
		checkoutHandler.RegisterRoutes(apiV1)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Storefront BFF listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to run Storefront BFF", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down Storefront BFF...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", err)
	}
}
