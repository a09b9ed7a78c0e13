package handlers

import "github.com/pagebrief/pagebrief/internal/db/models"

// CreateJobRequest is the body of a job submission
type CreateJobRequest struct {
	URL string `json:"url"`
}

// JobResponse is the wire representation of a job. Every failure,
// regardless of cause, renders through the same shape: a status, an
// optional identifier and a human-readable error string.
type JobResponse struct {
	UUID   string `json:"uuid,omitempty"`
	URL    string `json:"url,omitempty"`
	Result string `json:"result,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// renderJob converts a persisted job into its wire representation
func renderJob(job *models.Job) JobResponse {
	return JobResponse{
		UUID:   job.UUID,
		URL:    job.URL,
		Result: job.Result,
		Status: job.Status.String(),
		Error:  job.ErrorMessage,
	}
}

// renderFailure builds the uniform failure payload. The job may be nil
// for errors with no job to attach to, in which case the payload carries
// the message alone.
func renderFailure(message string, job *models.Job) JobResponse {
	resp := JobResponse{
		Status: models.JobStatusFailed.String(),
		Error:  message,
	}
	if job != nil {
		resp.UUID = job.UUID
	}
	return resp
}
