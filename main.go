package main

import (
	"pharmacy-api/config"
	"pharmacy-api/routes"
	"pharmacy-api/seed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := config.InitLogger(cfg.LogMode, cfg.LogFile)
	defer log.Sync() //nolint:errcheck
	for _, note := range cfg.Notes {
		zap.S().Info(note)
	}

	gin.SetMode(cfg.GinMode)

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		zap.S().Fatalf("failed to initialize database: %+v", err)
	}

	if err := seed.EnsureAdmin(db, seed.Admin{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}); err != nil {
		zap.S().Errorf("admin bootstrap failed: %+v", err)
	}
	if err := seed.Catalog(db, cfg.SeedDir); err != nil {
		zap.S().Errorf("catalog seed failed: %+v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r)

	zap.S().Infof("server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.S().Fatalf("failed to start server: %v", err)
	}
}
