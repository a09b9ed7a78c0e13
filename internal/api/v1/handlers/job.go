package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pagebrief/pagebrief/internal/services"
)

// JobHandler handles HTTP requests for job operations
type JobHandler struct {
	service *services.Job
}

// NewJobHandler creates a new job handler instance
func NewJobHandler(s *services.Job) *JobHandler {
	return &JobHandler{service: s}
}

// CreateJob handles the request to submit a URL for summarization. The
// response is written as soon as the job is durably pending; extraction
// and summarization happen after it.
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req CreateJobRequest
	// An unparseable body means no url was submitted; the validation
	// gate turns the empty url into the uniform rejection.
	_ = c.BodyParser(&req)

	job, failure := h.service.Submit(c.Context(), req.URL)
	if failure != nil {
		return c.Status(fiber.StatusBadRequest).JSON(renderFailure(failure.Message, job))
	}

	return c.Status(fiber.StatusCreated).JSON(renderJob(job))
}

// GetJob handles the request to look up a job by its UUID
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	uuid := c.Params("uuid")

	job, failure := h.service.Lookup(c.Context(), uuid)
	if failure != nil {
		return c.Status(fiber.StatusBadRequest).JSON(renderFailure(failure.Message, nil))
	}

	return c.JSON(renderJob(job))
}
