package epaper

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrEditionNotFound indicates an edition was not found
	ErrEditionNotFound = errors.New("edition not found")

	// ErrPageNotFound indicates a page was not found within an edition
	ErrPageNotFound = errors.New("page not found")

	// ErrSessionNotFound indicates no edit session exists for a token
	ErrSessionNotFound = errors.New("edit session not found")

	// ErrAssetNotFound indicates an asset was not found in the asset store
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidBlockKind indicates an unknown block kind discriminant
	ErrInvalidBlockKind = errors.New("invalid block kind")

	// ErrInvalidEditionStatus indicates an operation is not allowed from the
	// edition's current status
	ErrInvalidEditionStatus = errors.New("invalid edition status")

	// ErrInvalidLanguage indicates an unsupported publication language
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrPermissionDenied indicates the acting user's role does not allow the
	// operation
	ErrPermissionDenied = errors.New("permission denied")

	// ErrGenerationFailed indicates an AI generation call faulted; edition
	// state is untouched and the operation can be retried
	ErrGenerationFailed = errors.New("generation failed")

	// ErrNoGenerator indicates no generator was configured on the service
	ErrNoGenerator = errors.New("no generator configured")

	// ErrNoAssetStore indicates no asset store was configured on the service
	ErrNoAssetStore = errors.New("no asset store configured")

	// ErrLoginFailed indicates a login request could not be accepted
	ErrLoginFailed = errors.New("login failed")
)

// EditionError represents an error related to edition operations
type EditionError struct {
	EditionID string
	Op        string
	Err       error
}

func (e *EditionError) Error() string {
	return fmt.Sprintf("edition operation %s failed for edition %s: %v", e.Op, e.EditionID, e.Err)
}

func (e *EditionError) Unwrap() error {
	return e.Err
}
