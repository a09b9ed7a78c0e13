package services

// FailureKind is the closed enumeration of ways a job can fail. Clients
// only ever see the message text; the kind exists so callers inside the
// process can branch without string matching.
type FailureKind int

// Failure kinds
const (
	// FailureInvalidInput covers missing and syntactically invalid URLs
	FailureInvalidInput FailureKind = iota
	// FailureUnsupportedDomain means the URL's host is not allow-listed
	FailureUnsupportedDomain
	// FailureExtraction means the page content could not be retrieved
	FailureExtraction
	// FailureSummarization means the generation backend errored or returned nothing
	FailureSummarization
	// FailureStorage means a persistence write did not succeed
	FailureStorage
	// FailureNotFound means no job could be retrieved for the identifier
	FailureNotFound
)

// Client-visible failure messages. The async-suffix and lookup messages
// are part of the API contract and must not change.
const (
	// MsgExtractionFailed is persisted when extraction fails for a pending job
	MsgExtractionFailed = "failed to retrieve content"
	// MsgSummarizationFailed is persisted when summarization fails for a pending job
	MsgSummarizationFailed = "failed to fetch summary"
	// MsgStorageFailed is returned when the initial persistence write fails
	MsgStorageFailed = "failed to save job"
	// MsgJobNotFound deliberately collapses not-found and storage errors
	// on the read path into one message
	MsgJobNotFound = "could not retrieve job, verify the identifier"
)

// Failure is a rejected or errored job outcome carrying the kind and the
// message rendered to the client.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Error implements the error interface
func (f *Failure) Error() string {
	return f.Message
}

// NewFailure creates a failure of the given kind and message
func NewFailure(kind FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}
