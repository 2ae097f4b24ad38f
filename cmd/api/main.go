package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vittaestetica/clinica-api/internal/config"
	dbpkg "github.com/vittaestetica/clinica-api/internal/db"
	"github.com/vittaestetica/clinica-api/internal/logger"
	"github.com/vittaestetica/clinica-api/internal/routes"
)

func main() {

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
