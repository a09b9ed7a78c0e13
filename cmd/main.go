package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/pagebrief/pagebrief/config"
	"github.com/pagebrief/pagebrief/internal/api/middleware"
	handlers "github.com/pagebrief/pagebrief/internal/api/v1/handlers"
	v1 "github.com/pagebrief/pagebrief/internal/api/v1/routes"
	"github.com/pagebrief/pagebrief/internal/db"
	"github.com/pagebrief/pagebrief/internal/db/repos"
	"github.com/pagebrief/pagebrief/internal/extractor"
	"github.com/pagebrief/pagebrief/internal/logger"
	"github.com/pagebrief/pagebrief/internal/services"
	"github.com/pagebrief/pagebrief/internal/summarizer"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Running without a .env file is fine; the environment wins anyway
		logger.Debugf("no .env file loaded: %v", err)
	}
	logger.InitializeAndConfigure()

	cfg := config.Load()

	database, err := db.New(db.Options{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		logger.Fatal("failed to connect to database: ", err)
	}

	jobRepo := repos.NewJobRepository(database)
	jobService := services.NewJobService(
		jobRepo,
		extractor.New(nil),
		summarizer.New(cfg.AnthropicAPIKey, cfg.SummaryModel, cfg.SummaryMaxTokens),
		services.Options{
			AllowedHost:      cfg.AllowedHost,
			ExtractTimeout:   cfg.ExtractTimeout,
			SummarizeTimeout: cfg.SummarizeTimeout,
		},
	)
	jobHandler := handlers.NewJobHandler(jobService)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	app.Use(middleware.Logger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// API v1 routes
	v1.Register(app, jobHandler)

	logger.Fatal(app.Listen(":" + cfg.Port))
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
