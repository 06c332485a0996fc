package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thierrygoms/barberapp-server/internal/config"
	dbpkg "github.com/thierrygoms/barberapp-server/internal/db"
	redispkg "github.com/thierrygoms/barberapp-server/internal/redis"
	"github.com/thierrygoms/barberapp-server/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := redispkg.NewClient(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
