package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

// ErrNotFound is returned by Cancel and MarkNeedsCleaning when no reservation
// with the given id exists. It indicates a caller bug rather than user input.
var ErrNotFound = errors.New("reservation not found")

type ValidationCode string

const (
	CodeInvalidDateOrder   ValidationCode = "invalid_date_order"
	CodeDurationTooLong    ValidationCode = "duration_too_long"
	CodeMissingContactInfo ValidationCode = "missing_contact_info"
	CodePurposeTooShort    ValidationCode = "purpose_too_short"
)

// ValidationError flags a single draft field so the caller can re-prompt with
// the offending input highlighted.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports that the candidate range overlaps an existing active
// reservation for the same facility identity. BlockedDates carries the
// facility's currently booked days so the caller can re-render its calendar.
type ConflictError struct {
	FacilityType models.FacilityType
	FacilityUnit string
	BlockedDates []time.Time
}

func (e *ConflictError) Error() string {
	if e.FacilityUnit != "" {
		return fmt.Sprintf("facility %s %s is already reserved in the requested range", e.FacilityType, e.FacilityUnit)
	}
	return fmt.Sprintf("facility %s is already reserved in the requested range", e.FacilityType)
}
