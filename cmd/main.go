package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fullstack-game/api/config"
	"github.com/fullstack-game/api/internal/container"
	"github.com/fullstack-game/api/internal/infrastructure/mongodb"
	"github.com/fullstack-game/api/internal/interface/middleware"
	"github.com/fullstack-game/api/internal/router"
	"github.com/fullstack-game/api/pkg/helpers"
	"github.com/fullstack-game/api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// A failed connection does not stop the process: requests made before the
	// store is reachable fail at the operation with a 500. Known quirk, kept.
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if client == nil {
		// Only a malformed URI gets here; an unreachable store still yields a
		// usable client below.
		logger.Fatalf("invalid mongodb configuration: %v", err)
	}
	if err != nil {
		logger.WithError(err).Error("mongodb connection failed, continuing without a verified store")
	} else {
		logger.Infof("connected to mongodb at %s", cfg.MongoURI)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongo(client.Database(cfg.MongoDB))
	container.SetJWT(jwtManager)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg)))
	if cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// corsConfig allows any origin unless an explicit list is configured.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	} else {
		c.AllowAllOrigins = true
	}
	return c
}
