package coworkers

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed matches any failed record or department retrieval.
	ErrFetchFailed = errors.New("coworkers: fetch failed")
	// ErrCreateFailed matches any failed record creation.
	ErrCreateFailed = errors.New("coworkers: create failed")
	// ErrInvalidDraft is returned when an incomplete draft is submitted.
	ErrInvalidDraft = errors.New("coworkers: draft requires name, role, department and a numeric salary")
	// ErrUnknownField is returned by DraftRecord.SetField for unknown names.
	ErrUnknownField = errors.New("coworkers: unknown draft field")
)

// Kind classifies a SyncError by the operation that failed.
type Kind int

const (
	FetchFailed Kind = iota + 1
	CreateFailed
)

func (k Kind) String() string {
	switch k {
	case FetchFailed:
		return "FetchFailed"
	case CreateFailed:
		return "CreateFailed"
	default:
		return "Unknown"
	}
}

// SyncError reports a failed round trip to the coworker API. StatusCode is
// zero for transport and decoding failures.
type SyncError struct {
	Kind       Kind
	Op         string
	StatusCode int
	Err        error
}

func (e *SyncError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + " failed"
}

func (e *SyncError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrFetchFailed and ErrCreateFailed by kind.
func (e *SyncError) Is(target error) bool {
	switch target {
	case ErrFetchFailed:
		return e.Kind == FetchFailed
	case ErrCreateFailed:
		return e.Kind == CreateFailed
	}
	return false
}

// asSyncError classifies err under kind unless it already is a SyncError.
func asSyncError(kind Kind, op string, err error) *SyncError {
	var se *SyncError
	if errors.As(err, &se) {
		return se
	}
	return &SyncError{Kind: kind, Op: op, Err: err}
}
