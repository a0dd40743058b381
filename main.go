package main

import (
	"log"
	"os"

	"elearn/config"
	"elearn/middleware"
	"elearn/routes"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	logger := log.New(os.Stdout, "[E-Learning] ", log.LstdFlags|log.LUTC)

	app := fiber.New(fiber.Config{
		ErrorHandler: utils.AppErrorHandler(logger),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	routes.SetupRoutes(app, db, cfg)

	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
