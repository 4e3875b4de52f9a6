package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bikerental/internal/config"
	"bikerental/internal/database"
	"bikerental/internal/domain"
	"bikerental/internal/middleware"
	"bikerental/internal/modules/rental"
	jwtsvc "bikerental/internal/pkg/jwt"
	"bikerental/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadRental()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&domain.Rental{}, &domain.StatusSyncTask{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	rentalRepo := repository.NewRentalRepository(db)
	syncTaskRepo := repository.NewSyncTaskRepository(db)
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	inventoryClient := rental.NewHTTPInventoryClient(cfg.InventoryURL, cfg.InternalToken, cfg.InventoryTimeout)

	service := rental.NewService(rentalRepo, inventoryClient, syncTaskRepo)
	handler := rental.NewHandler(service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reconciler := rental.NewReconciler(syncTaskRepo, inventoryClient)
	reconciler.Start(ctx, cfg.ReconcileInterval)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("/")
	{
		protected := root.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			handler.RegisterProtectedRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				handler.RegisterAdminRoutes(admin)
			}
		}
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Info().Str("service", "rental-service").Str("port", cfg.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
