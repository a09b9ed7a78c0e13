package services

import (
	"context"
	"errors"
	"time"

	"github.com/pagebrief/pagebrief/internal/db/models"
	"github.com/pagebrief/pagebrief/internal/db/repos"
	"github.com/pagebrief/pagebrief/internal/logger"
	"github.com/pagebrief/pagebrief/internal/validation"
)

// ContentExtractor retrieves the readable text content of a page
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Summarizer generates condensed text from extracted content
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Options configures the job service
type Options struct {
	// AllowedHost is the only host accepted for submitted URLs
	AllowedHost string
	// ExtractTimeout bounds a single extraction call
	ExtractTimeout time.Duration
	// SummarizeTimeout bounds a single summarization call
	SummarizeTimeout time.Duration
}

// Job provides business logic for job operations. It drives a validated
// job through extraction and summarization, persisting exactly one
// terminal update per job.
type Job struct {
	jobRepo    *repos.JobRepository
	extractor  ContentExtractor
	summarizer Summarizer
	opts       Options
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo *repos.JobRepository, extractor ContentExtractor, summarizer Summarizer, opts Options) *Job {
	if opts.ExtractTimeout == 0 {
		opts.ExtractTimeout = 60 * time.Second
	}
	if opts.SummarizeTimeout == 0 {
		opts.SummarizeTimeout = 120 * time.Second
	}
	return &Job{
		jobRepo:    jobRepo,
		extractor:  extractor,
		summarizer: summarizer,
		opts:       opts,
	}
}

// Submit validates a submission and, when accepted, persists a pending
// job and starts its asynchronous processing. The returned job is what
// the caller should render; a non-nil failure means the job was rejected
// (or could not be persisted) and must be rendered as a 4xx.
//
// A row is always persisted before this function returns: a FAILED row
// for rejected input, a PENDING row for accepted input. The asynchronous
// suffix never touches the response.
func (s *Job) Submit(ctx context.Context, rawURL string) (*models.Job, *Failure) {
	job := models.NewJob(rawURL)

	if err := validation.SubmissionURL(rawURL, s.opts.AllowedHost); err != nil {
		failure := rejectionFailure(err)
		job.Status = models.JobStatusFailed
		job.ErrorMessage = failure.Message
		if createErr := s.jobRepo.Create(ctx, job); createErr != nil {
			logger.Errorf("failed to persist rejected job %s: %v", job.UUID, createErr)
		}
		logger.Infof("job %s rejected: %s", job.UUID, failure.Message)
		return job, failure
	}

	job.Status = models.JobStatusPending
	if err := s.jobRepo.Create(ctx, job); err != nil {
		logger.Errorf("failed to persist pending job %s: %v", job.UUID, err)
		return job, NewFailure(FailureStorage, MsgStorageFailed)
	}

	// The response must not wait on extraction or summarization. The
	// goroutine runs detached from the request context so a client
	// disconnect cannot cancel the job.
	go s.process(job)

	return job, nil
}

// Lookup retrieves a job by UUID. Not-found and storage errors collapse
// into one caller-facing failure; distinguishing them leaks nothing
// actionable to the client.
func (s *Job) Lookup(ctx context.Context, uuid string) (*models.Job, *Failure) {
	job, err := s.jobRepo.GetByUUID(ctx, uuid)
	if err != nil {
		if !errors.Is(err, repos.ErrJobNotFound) {
			logger.Errorf("failed to read job %s: %v", uuid, err)
		}
		return nil, NewFailure(FailureNotFound, MsgJobNotFound)
	}
	return job, nil
}

// process is the asynchronous suffix of a job: extract, summarize,
// persist one terminal update. Steps are strictly sequential and never
// retried; either external call failing terminates the job FAILED.
func (s *Job) process(job *models.Job) {
	ctx := context.Background()

	extractCtx, cancel := context.WithTimeout(ctx, s.opts.ExtractTimeout)
	text, err := s.extractor.Extract(extractCtx, job.URL)
	cancel()
	if err != nil {
		logger.Errorf("extraction error for job %s: %v", job.UUID, err)
		s.fail(ctx, job, MsgExtractionFailed)
		return
	}

	summarizeCtx, cancel := context.WithTimeout(ctx, s.opts.SummarizeTimeout)
	summary, err := s.summarizer.Summarize(summarizeCtx, text)
	cancel()
	if err != nil {
		logger.Errorf("summarization error for job %s: %v", job.UUID, err)
		s.fail(ctx, job, MsgSummarizationFailed)
		return
	}

	if err := s.jobRepo.UpdateTerminal(ctx, job.UUID, models.JobStatusCompleted, summary, ""); err != nil {
		logger.Errorf("failed to persist result for job %s: %v", job.UUID, err)
		return
	}
	logger.Infof("job %s done", job.UUID)
}

func (s *Job) fail(ctx context.Context, job *models.Job, message string) {
	if err := s.jobRepo.UpdateTerminal(ctx, job.UUID, models.JobStatusFailed, "", message); err != nil {
		logger.Errorf("failed to persist failure for job %s: %v", job.UUID, err)
	}
}

// rejectionFailure maps a validation error onto its failure kind. The
// validation error text itself is the client-visible message.
func rejectionFailure(err error) *Failure {
	kind := FailureInvalidInput
	if errors.Is(err, validation.ErrUnsupportedDomain) {
		kind = FailureUnsupportedDomain
	}
	return NewFailure(kind, err.Error())
}
