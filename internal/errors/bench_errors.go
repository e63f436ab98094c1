package errors

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidCategory       = errors.New("invalid polymorphism category")
	ErrInvalidWorkload       = errors.New("invalid computation")
	ErrInvalidIterationCount = errors.New("invalid iteration count")
	ErrSinkUnavailable       = errors.New("result sink unavailable")
)

// LookupKind says which registry key was missing.
type LookupKind int

const (
	KindCategory LookupKind = iota
	KindWorkload
)

// LookupError is returned when a (category, workload) pair is not registered.
type LookupError struct {
	Kind     LookupKind
	Category string
	Workload string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Kind == KindCategory {
		return fmt.Sprintf("%v '%s'", ErrInvalidCategory, e.Category)
	}
	return fmt.Sprintf("%v '%s' for category '%s'", ErrInvalidWorkload, e.Workload, e.Category)
}

// Is matches ErrNotFound for every kind, and the kind-specific sentinel.
func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return true
	case ErrInvalidCategory:
		return e.Kind == KindCategory
	case ErrInvalidWorkload:
		return e.Kind == KindWorkload
	}
	return false
}

// NewCategoryError reports an unknown category.
func NewCategoryError(category string) *LookupError {
	return &LookupError{Kind: KindCategory, Category: category}
}

// NewWorkloadError reports an unknown workload within a known category.
func NewWorkloadError(category, workload string) *LookupError {
	return &LookupError{Kind: KindWorkload, Category: category, Workload: workload}
}

// IterationError carries the rejected iteration count input.
type IterationError struct {
	Input string
	Err   error
}

func (e *IterationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v '%s': %v", ErrInvalidIterationCount, e.Input, e.Err)
	}
	return fmt.Sprintf("%v '%s': must be a positive integer", ErrInvalidIterationCount, e.Input)
}

func (e *IterationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidIterationCount, e.Err}
	}
	return []error{ErrInvalidIterationCount}
}

// SinkError is returned when results could not be persisted. Measurements
// taken before the failure remain valid.
type SinkError struct {
	Target string
	Err    error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrSinkUnavailable, e.Target, e.Err)
}

func (e *SinkError) Unwrap() []error {
	return []error{ErrSinkUnavailable, e.Err}
}

// NewSinkError wraps err as a SinkError for target.
func NewSinkError(target string, err error) *SinkError {
	return &SinkError{Target: target, Err: err}
}
