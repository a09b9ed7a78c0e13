package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pagebrief/pagebrief/internal/db/models"
	"github.com/pagebrief/pagebrief/internal/db/repos"
	"github.com/pagebrief/pagebrief/internal/services"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

type stubSummarizer struct {
	summary string
	err     error
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return s.summary, s.err
}

type JobHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	jobRepo *repos.JobRepository
	app     *fiber.App
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}

func (s *JobHandlerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		s.T().Fatal("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Job{}); err != nil {
		s.T().Fatal("failed to migrate database schema")
	}

	s.db = db
	s.jobRepo = repos.NewJobRepository(db)

	service := services.NewJobService(
		s.jobRepo,
		&stubExtractor{text: "extracted text"},
		&stubSummarizer{summary: "stub summary"},
		services.Options{AllowedHost: "www.lifewire.com"},
	)

	s.app = fiber.New()
	handler := NewJobHandler(service)
	jobs := s.app.Group("/api/v1/jobs")
	jobs.Post("/", handler.CreateJob)
	jobs.Get("/:uuid", handler.GetJob)
}

func (s *JobHandlerTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (s *JobHandlerTestSuite) postJob(body string) (*http.Response, map[string]interface{}) {
	req, err := http.NewRequest(http.MethodPost, "/api/v1/jobs/", strings.NewReader(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req, 5000)
	s.Require().NoError(err)
	return resp, s.decodeBody(resp)
}

func (s *JobHandlerTestSuite) getJob(uuid string) (*http.Response, map[string]interface{}) {
	req, err := http.NewRequest(http.MethodGet, "/api/v1/jobs/"+uuid, nil)
	s.Require().NoError(err)

	resp, err := s.app.Test(req, 5000)
	s.Require().NoError(err)
	return resp, s.decodeBody(resp)
}

func (s *JobHandlerTestSuite) decodeBody(resp *http.Response) map[string]interface{} {
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var result map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &result))
	return result
}

// waitTerminal polls the repo until the processing goroutine has finished
func (s *JobHandlerTestSuite) waitTerminal(uuid string) {
	s.Require().Eventually(func() bool {
		job, err := s.jobRepo.GetByUUID(context.Background(), uuid)
		return err == nil && job.IsTerminal()
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *JobHandlerTestSuite) TestCreateJobAccepted() {
	resp, body := s.postJob(`{"url": "https://www.lifewire.com/how-to-do-a-thing-1234567"}`)
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	s.NotEmpty(body["uuid"])
	s.Equal("https://www.lifewire.com/how-to-do-a-thing-1234567", body["url"])
	s.Equal("pending", body["status"])
	s.NotContains(body, "error")
	s.NotContains(body, "result")
}

func (s *JobHandlerTestSuite) TestCreateJobMissingURL() {
	resp, body := s.postJob(`{}`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	s.NotEmpty(body["uuid"])
	s.Equal("failed", body["status"])
	s.Equal("missing url", body["error"])
}

func (s *JobHandlerTestSuite) TestCreateJobMalformedBody() {
	resp, body := s.postJob(`this is not json`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("missing url", body["error"])
}

func (s *JobHandlerTestSuite) TestCreateJobUnsupportedDomain() {
	resp, body := s.postJob(`{"url": "https://example.com/article"}`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	s.Equal("failed", body["status"])
	s.Equal("unsupported domain", body["error"])

	// The rejected job is persisted and can be looked up
	uuid, ok := body["uuid"].(string)
	s.Require().True(ok)
	resp, body = s.getJob(uuid)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("failed", body["status"])
	s.Equal("unsupported domain", body["error"])
}

func (s *JobHandlerTestSuite) TestGetJobCompleted() {
	_, created := s.postJob(`{"url": "https://www.lifewire.com/how-to-do-a-thing-1234567"}`)
	uuid := created["uuid"].(string)
	s.waitTerminal(uuid)

	resp, body := s.getJob(uuid)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(uuid, body["uuid"])
	s.Equal("completed", body["status"])
	s.Equal("stub summary", body["result"])
	s.NotContains(body, "error")
}

func (s *JobHandlerTestSuite) TestGetJobNotFound() {
	resp, body := s.getJob("d8f1a111-0000-4000-8000-000000000000")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	s.Equal("failed", body["status"])
	s.Equal("could not retrieve job, verify the identifier", body["error"])
	s.NotContains(body, "uuid")
}
