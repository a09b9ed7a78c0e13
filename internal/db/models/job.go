package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobCreatedAtField is the database field name for the job creation timestamp
const JobCreatedAtField = "created_at"

// JobStatus represents the current state of a job in the system
type JobStatus int

// Job status constants
const (
	// JobStatusUnknown represents an unknown or invalid job status
	JobStatusUnknown JobStatus = iota
	// JobStatusPending indicates the job has been accepted and is waiting
	// for extraction and summarization to finish
	JobStatusPending
	// JobStatusCompleted indicates the job has finished successfully
	JobStatusCompleted
	// JobStatusFailed indicates the job has failed to complete
	JobStatusFailed
)

// Job represents one tracked request to summarize the content of a URL.
// The UUID is the only handle exposed to clients; the row's surrogate
// primary key is never used for lookups.
type Job struct {
	gorm.Model
	UUID         string    `json:"uuid" gorm:"uniqueIndex;not null"`
	URL          string    `json:"url" gorm:"type:text"`
	Status       JobStatus `json:"status" gorm:"index"`
	Result       string    `json:"result,omitempty" gorm:"type:text"`
	ErrorMessage string    `json:"error,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// NewJob creates an unpersisted job with a freshly generated UUID.
// The URL may be empty when the submission carried none.
func NewJob(url string) *Job {
	return &Job{
		UUID: uuid.NewString(),
		URL:  url,
	}
}

// IsTerminal returns true once the job has reached a sink state
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// ParseJobStatus converts a string representation of a job status to JobStatus type
func ParseJobStatus(str string) (JobStatus, error) {
	for i, status := range []string{
		"unknown",
		"pending",
		"completed",
		"failed",
	} {
		if status == str {
			return JobStatus(i), nil
		}
	}

	return JobStatus(0), fmt.Errorf("invalid job status: %s", str)
}

// MarshalJSON implements the json.Marshaler interface for JobStatus
func (s JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for JobStatus
func (s *JobStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	status, err := ParseJobStatus(str)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

func (s JobStatus) String() string {
	return []string{
		"unknown",
		"pending",
		"completed",
		"failed",
	}[s]
}
