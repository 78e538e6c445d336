package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WoolleyCutzz/salon-booking/internal/cache"
	"github.com/WoolleyCutzz/salon-booking/internal/config"
	dbpkg "github.com/WoolleyCutzz/salon-booking/internal/db"
	"github.com/WoolleyCutzz/salon-booking/internal/logger"
	"github.com/WoolleyCutzz/salon-booking/internal/middleware"
	"github.com/WoolleyCutzz/salon-booking/internal/routes"
)

func main() {

	log := logger.New()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)
	c := cache.New(cfg.RedisAddr, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, c, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
