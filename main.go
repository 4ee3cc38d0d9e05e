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

	"hotel-rooms-api/auth"
	"hotel-rooms-api/config"
	"hotel-rooms-api/controllers"
	"hotel-rooms-api/routes"
	"hotel-rooms-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := config.NewLogger(cfg)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "secretkey" {
		log.Warn("JWT_SECRET is the built-in default; set it outside local development")
	}

	ctx := context.Background()
	gw, err := config.ConnectDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal("database connect failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	creds, err := auth.NewMemoryCredentialStore(hasher, auth.DefaultSeeds)
	if err != nil {
		log.Fatal("seeding credentials failed", zap.Error(err))
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	roomTypeService := services.NewRoomTypeService(gw, log)
	roomService := services.NewRoomService(gw, log)

	router := routes.SetupRouter(routes.Handlers{
		RoomTypes:   controllers.NewRoomTypeController(roomTypeService),
		Rooms:       controllers.NewRoomController(roomService),
		Auth:        controllers.NewAuthController(tokens, log),
		Health:      controllers.NewHealthController(gw, log),
		Credentials: creds,
		Hasher:      hasher,
	}, routes.ParseCorsOrigins(cfg.CorsOrigins), log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	if err := gw.Close(shutdownCtx); err != nil {
		log.Warn("closing database failed", zap.Error(err))
	}

	log.Info("server stopped")
}
