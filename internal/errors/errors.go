package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this machine id"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error raised before any write
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// BatchError aggregates per-item failures from a bulk save. Items that
// succeeded before the failing ones are not rolled back.
type BatchError struct {
	Errors []string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d item(s) failed: %s", len(e.Errors), strings.Join(e.Errors, "; "))
}

// ImportError marks a failed spreadsheet import. The full detail is also
// recorded on the import job record.
type ImportError struct {
	Message string
}

func (e *ImportError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrClientNotFound          = &NotFoundError{Entity: "client"}
	ErrMachineNotFound         = &NotFoundError{Entity: "machine"}
	ErrSizeRangeNotFound       = &NotFoundError{Entity: "size range"}
	ErrStyleNotFound           = &NotFoundError{Entity: "style"}
	ErrShiftAllocationNotFound = &NotFoundError{Entity: "shift allocation"}
	ErrAlterationNotFound      = &NotFoundError{Entity: "shift alteration"}
	ErrOrderNotFound           = &NotFoundError{Entity: "order"}
	ErrImportJobNotFound       = &NotFoundError{Entity: "import job"}
)

// Already Exists Errors
var (
	ErrClientExists          = &AlreadyExistsError{Entity: "client", Context: "with this name"}
	ErrDefaultCalendarExists = &AlreadyExistsError{Entity: "default shift allocation", Context: "system-wide"}
	ErrMachineExists         = &AlreadyExistsError{Entity: "machine", Context: "with this machine id"}
	ErrProcessExists         = &AlreadyExistsError{Entity: "process", Context: "with this name"}
	ErrColourExists          = &AlreadyExistsError{Entity: "colour", Context: "with this name"}
	ErrSizeExists            = &AlreadyExistsError{Entity: "size", Context: "with this value"}
	ErrSizeRangeExists       = &AlreadyExistsError{Entity: "size range", Context: "with this name"}
	ErrStyleExists           = &AlreadyExistsError{Entity: "style", Context: "with this style code"}
	ErrShiftExists           = &AlreadyExistsError{Entity: "shift", Context: "with this name"}
)

// Business Logic Errors. Declared as ValidationErrors so handlers map them
// to 400 like any other pre-write rejection.
var (
	ErrInvalidDateRange           = &ValidationError{Message: "end date must be on or after start date"}
	ErrOverlappingCalendars       = &ValidationError{Message: "shift allocation date range overlaps an existing calendar for the same machine scope"}
	ErrOverlappingShifts          = &ValidationError{Message: "assigned shifts overlap in time of day"}
	ErrAlterationOutsideRange     = &ValidationError{Message: "alteration date must be within the calendar date range"}
	ErrMachineCalendarAlterations = &ValidationError{Message: "machine-specific shift allocations cannot carry alterations"}
	ErrNoShiftsSelected           = &ValidationError{Message: "please select at least one shift"}
	ErrNoDefaultCalendar          = &ValidationError{Message: "no shift allocation covers this date and no default calendar exists"}
	ErrOrderNotSubmitted          = &ValidationError{Message: "only submitted orders can be closed or reopened"}
	ErrOrderAlreadyClosed         = &ValidationError{Message: "order is already closed"}
	ErrOrderNotClosed             = &ValidationError{Message: "order is not closed"}
	ErrOrderClosed                = &ValidationError{Message: "cannot cancel a closed order, reopen it first"}
	ErrOrderNotAllocated          = &ValidationError{Message: "order not allocated in capacity planning"}
	ErrNoOrderStyles              = &ValidationError{Message: "please add at least one style before saving"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBatch checks if an error is a BatchError
func IsBatch(err error) bool {
	var batchErr *BatchError
	return errors.As(err, &batchErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewFieldValidationError creates a ValidationError naming the failing field
func NewFieldValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBatchError creates a BatchError from collected item failures
func NewBatchError(itemErrors []string) error {
	return &BatchError{Errors: itemErrors}
}

// NewImportError creates a new ImportError
func NewImportError(message string) error {
	return &ImportError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
