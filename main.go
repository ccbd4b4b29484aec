package main

import (
	"Packed/database"
	"Packed/internal/config"
	"Packed/internal/problem"
	"Packed/internal/routers"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("packed.yaml")
}

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)
	server.JanitorService.StartCleanCycle()

	cfg, err := config.LoadConfiguration("packed.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency:  cfg.Server.Concurrency * 1024,
		AppName:      "Packed",
		ErrorHandler: problem.NewErrorHandler(server.LogService.Log),
	})

	app.Use(logger.New())
	app.Use(recover.New())
	routers.SetupRoutes(app, server)

	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
