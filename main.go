package main

import (
	"fmt"
	"log"

	"savoria/configs"
	"savoria/middlewares"
	"savoria/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := configs.Seed(db, cfg); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded files
	r.Static("/uploads", cfg.UploadsDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
