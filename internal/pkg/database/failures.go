package database

import "fmt"

// FailureKind tags the closed set of storage-layer error categories.
type FailureKind string

const (
	FailedToOpen     FailureKind = "failed-to-open"
	FailedToClose    FailureKind = "failed-to-close"
	FailedToRetrieve FailureKind = "failed-to-retrieve"
	FailedToRun      FailureKind = "failed-to-run"
)

// Failure is a storage-layer error carrying its kind, a fixed human reason,
// and the underlying driver error when one exists.
type Failure struct {
	Kind   FailureKind
	Reason string
	Cause  error
}

// NewFailure builds a storage failure for a recognized kind. An unrecognized
// kind is a missing case in this switch, not a runtime condition, so it panics.
func NewFailure(kind FailureKind, cause error) *Failure {
	var reason string

	switch kind {
	case FailedToOpen:
		reason = "Failed to open the database"
	case FailedToClose:
		reason = "Failed to close the database"
	case FailedToRetrieve:
		reason = "Failed to retrieve records from the database"
	case FailedToRun:
		reason = "Failed to run the SQL statement"
	default:
		panic(fmt.Sprintf("unrecognized storage failure kind: %q", kind))
	}

	return &Failure{Kind: kind, Reason: reason, Cause: cause}
}

func (e *Failure) Error() string {
	if e.Cause != nil {
		return e.Reason + ": " + e.Cause.Error()
	}

	return e.Reason
}

func (e *Failure) Unwrap() error {
	return e.Cause
}

// Is matches any storage failure when the target carries no kind, or exactly
// one kind when it does.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}

	return t.Kind == "" || t.Kind == e.Kind
}
