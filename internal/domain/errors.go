package domain

import "errors"

// Domain errors
var (
	// Validation errors
	ErrInvalidBatchID        = errors.New("invalid batch id")
	ErrInvalidBatchName      = errors.New("invalid batch name")
	ErrInvalidPodID          = errors.New("invalid pod id")
	ErrInvalidPodName        = errors.New("invalid pod name")
	ErrInvalidFellowID       = errors.New("invalid fellow id")
	ErrInvalidFullName       = errors.New("invalid fellow full name")
	ErrInvalidUsername       = errors.New("invalid github username")
	ErrInvalidPRID           = errors.New("invalid pull request id")
	ErrInvalidRepository     = errors.New("invalid repository, want owner/name")
	ErrInvalidPRNumber       = errors.New("invalid pull request number")
	ErrInvalidPRState        = errors.New("invalid pull request state")
	ErrInvalidCommit         = errors.New("invalid commit")
	ErrInvalidScope          = errors.New("invalid type parameter")
	ErrInvalidWindow         = errors.New("invalid days parameter")
	ErrInvalidPRURL          = errors.New("invalid PR URL")
	ErrInvalidRepoURL        = errors.New("invalid repository URL")
	ErrMissingPRCoordinates  = errors.New("missing required parameters")
	ErrMissingScopeParameter = errors.New("missing type or id parameter")

	// Batch errors
	ErrBatchNotFound      = errors.New("batch not found")
	ErrBatchAlreadyExists = errors.New("batch already exists")

	// Pod errors
	ErrPodNotFound      = errors.New("pod not found")
	ErrPodAlreadyExists = errors.New("pod already exists")

	// Fellow errors
	ErrFellowNotFound      = errors.New("fellow not found")
	ErrFellowAlreadyExists = errors.New("fellow already exists")

	// PR errors
	ErrPRNotFound       = errors.New("pull request not found")
	ErrPRAlreadyTracked = errors.New("pull request already tracked")

	// Upstream errors
	ErrUpstreamFetch = errors.New("failed to fetch GitHub data")
)

// HTTPError is the error body returned by the API.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// ErrorMapping maps domain errors onto API errors.
var ErrorMapping = map[error]HTTPError{
	ErrInvalidBatchID:        {Code: "INVALID_REQUEST", Message: "batch id is required"},
	ErrInvalidBatchName:      {Code: "INVALID_REQUEST", Message: "batch name is required"},
	ErrInvalidPodID:          {Code: "INVALID_REQUEST", Message: "pod id is required"},
	ErrInvalidPodName:        {Code: "INVALID_REQUEST", Message: "pod name is required"},
	ErrInvalidFellowID:       {Code: "INVALID_REQUEST", Message: "fellow id is required"},
	ErrInvalidFullName:       {Code: "INVALID_REQUEST", Message: "full_name is required"},
	ErrInvalidUsername:       {Code: "INVALID_REQUEST", Message: "username is required"},
	ErrInvalidPRID:           {Code: "INVALID_REQUEST", Message: "pull request id is invalid"},
	ErrInvalidRepository:     {Code: "INVALID_REQUEST", Message: "repository must be owner/name"},
	ErrInvalidPRNumber:       {Code: "INVALID_REQUEST", Message: "pr_number must be positive"},
	ErrInvalidPRState:        {Code: "INVALID_REQUEST", Message: "state must be open or closed"},
	ErrInvalidCommit:         {Code: "INVALID_REQUEST", Message: "commit sha and author_date are required"},
	ErrInvalidScope:          {Code: "INVALID_REQUEST", Message: "Invalid type parameter"},
	ErrInvalidWindow:         {Code: "INVALID_REQUEST", Message: "days must be between 1 and 365"},
	ErrInvalidPRURL:          {Code: "INVALID_REQUEST", Message: "Invalid PR URL"},
	ErrInvalidRepoURL:        {Code: "INVALID_REQUEST", Message: "Invalid repository URL"},
	ErrMissingPRCoordinates:  {Code: "INVALID_REQUEST", Message: "Missing required parameters"},
	ErrMissingScopeParameter: {Code: "INVALID_REQUEST", Message: "Missing type parameter"},
	ErrBatchNotFound:         {Code: "NOT_FOUND", Message: "batch not found"},
	ErrPodNotFound:           {Code: "NOT_FOUND", Message: "pod not found"},
	ErrFellowNotFound:        {Code: "NOT_FOUND", Message: "fellow not found"},
	ErrPRNotFound:            {Code: "NOT_FOUND", Message: "pull request not found"},
	ErrBatchAlreadyExists:    {Code: "BATCH_EXISTS", Message: "batch id already exists"},
	ErrPodAlreadyExists:      {Code: "POD_EXISTS", Message: "pod id already exists"},
	ErrFellowAlreadyExists:   {Code: "FELLOW_EXISTS", Message: "fellow id already exists"},
	ErrPRAlreadyTracked:      {Code: "PR_EXISTS", Message: "pull request is already tracked"},
	ErrUpstreamFetch:         {Code: "UPSTREAM_ERROR", Message: "Failed to fetch GitHub data"},
}

// ToHTTPError resolves err (possibly wrapped) to its API error.
func ToHTTPError(err error) (HTTPError, bool) {
	if httpErr, exists := ErrorMapping[err]; exists {
		return httpErr, true
	}
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
