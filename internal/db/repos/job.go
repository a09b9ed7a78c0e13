package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pagebrief/pagebrief/internal/db/models"
)

// ErrJobNotFound is returned when no job exists for the given UUID
var ErrJobNotFound = errors.New("job not found")

// JobRepository provides access to job-related database operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create persists a new job in the database. The job's UUID must already
// be assigned; the store sets the creation timestamp.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.UUID == "" {
		return fmt.Errorf("job has no uuid")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// UpdateTerminal sets the terminal fields of a job. A job receives exactly
// one terminal update in its life, so a plain last-writer-wins update is
// sufficient; no compare-and-swap is needed.
func (r *JobRepository) UpdateTerminal(ctx context.Context, uuid string, status models.JobStatus, result, errMsg string) error {
	return r.db.WithContext(ctx).Model(&models.Job{}).
		Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"status":        status,
			"result":        result,
			"error_message": errMsg,
		}).Error
}

// GetByUUID retrieves a job by its externally exposed UUID
func (r *JobRepository) GetByUUID(ctx context.Context, uuid string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}
