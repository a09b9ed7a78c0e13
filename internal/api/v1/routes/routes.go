package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pagebrief/pagebrief/internal/api/v1/handlers"
)

// SetupRoutes configures all the v1 routes
func SetupRoutes(router fiber.Router, jobHandler *handlers.JobHandler) {
	// Job routes - create and poll
	jobs := router.Group("/jobs")
	jobs.Post("/", jobHandler.CreateJob)
	jobs.Get("/:uuid", jobHandler.GetJob)
}

// Register registers the v1 routes
func Register(app *fiber.App, jobHandler *handlers.JobHandler) {
	// API v1 routes
	v1Group := app.Group("/api/v1")
	SetupRoutes(v1Group, jobHandler)
}
