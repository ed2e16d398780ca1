package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bemviver/clinic-scheduler/internal/config"
	dbpkg "github.com/bemviver/clinic-scheduler/internal/db"
	"github.com/bemviver/clinic-scheduler/internal/logging"
	"github.com/bemviver/clinic-scheduler/internal/metrics"
	"github.com/bemviver/clinic-scheduler/internal/middleware"
	"github.com/bemviver/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg)
	db := dbpkg.NewDB(cfg)

	metrics.Register()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
