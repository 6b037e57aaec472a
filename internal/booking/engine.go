package booking

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

const (
	// MaxStayDays caps a single reservation's length, inclusive.
	MaxStayDays = 180
	// MinPurposeLen is the minimum length of the required purpose text.
	MinPurposeLen = 10
)

// Draft is a candidate reservation as collected by the booking form. The
// guest pair applies to dorm bookings, the instructor pair to everything else;
// exactly one pair is required depending on the facility type.
type Draft struct {
	FacilityType    models.FacilityType
	FacilityUnit    string
	GuestName       string
	GuestEmail      string
	InstructorName  string
	InstructorEmail string
	CheckIn         time.Time
	CheckOut        time.Time
	Purpose         string
	SpecialRequests string
}

// Engine decides whether facility reservations may be created and derives the
// booked-day calendar. It holds no state of its own; every operation reads the
// collection fresh from the store.
type Engine struct {
	store    Store
	validate *validator.Validate
}

func NewEngine(store Store) *Engine {
	return &Engine{
		store:    store,
		validate: validator.New(),
	}
}

// matchActive filters to active reservations for the given facility identity.
// A non-empty unit narrows the match to that exact unit; an empty unit (the
// unit-less facility types) matches every reservation of the type, since those
// share a single instance.
func matchActive(reservations []models.Reservation, facilityType models.FacilityType, facilityUnit string) []models.Reservation {
	var matched []models.Reservation
	for _, r := range reservations {
		if r.Status != models.ReservationActive {
			continue
		}
		if r.FacilityType != facilityType {
			continue
		}
		if facilityUnit != "" && r.FacilityUnit != facilityUnit {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

func bookedDatesIn(reservations []models.Reservation, facilityType models.FacilityType, facilityUnit string) []time.Time {
	seen := map[time.Time]struct{}{}
	for _, r := range matchActive(reservations, facilityType, facilityUnit) {
		for _, d := range daysInRange(r.CheckIn, r.CheckOut) {
			seen[d] = struct{}{}
		}
	}
	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func hasConflictIn(reservations []models.Reservation, facilityType models.FacilityType, facilityUnit string, checkIn, checkOut time.Time) bool {
	for _, r := range matchActive(reservations, facilityType, facilityUnit) {
		if overlaps(checkIn, checkOut, r.CheckIn, r.CheckOut) {
			return true
		}
	}
	return false
}

// BookedDates returns every calendar day covered by an active reservation for
// the given facility identity, ascending and deduplicated.
func (e *Engine) BookedDates(ctx context.Context, facilityType models.FacilityType, facilityUnit string) ([]time.Time, error) {
	reservations, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return bookedDatesIn(reservations, facilityType, facilityUnit), nil
}

// HasConflict reports whether the candidate range overlaps any active
// reservation for the facility identity. The caller must pass an ordered
// range; the engine does not reorder.
func (e *Engine) HasConflict(ctx context.Context, facilityType models.FacilityType, facilityUnit string, checkIn, checkOut time.Time) (bool, error) {
	reservations, err := e.store.Load(ctx)
	if err != nil {
		return false, err
	}
	return hasConflictIn(reservations, facilityType, facilityUnit, checkIn, checkOut), nil
}

func (e *Engine) validateContact(name, email, nameField, emailField string) *ValidationError {
	if len(strings.TrimSpace(name)) < 2 {
		return &ValidationError{
			Code:    CodeMissingContactInfo,
			Field:   nameField,
			Message: "contact name is required (at least 2 characters)",
		}
	}
	if err := e.validate.Var(email, "required,email"); err != nil {
		return &ValidationError{
			Code:    CodeMissingContactInfo,
			Field:   emailField,
			Message: "a valid contact email is required",
		}
	}
	return nil
}

func (e *Engine) validateDraft(draft Draft) *ValidationError {
	nights := DaysBetween(draft.CheckIn, draft.CheckOut)
	if nights <= 0 {
		return &ValidationError{
			Code:    CodeInvalidDateOrder,
			Field:   "check_out",
			Message: "check-out must be after check-in",
		}
	}
	if nights > MaxStayDays {
		return &ValidationError{
			Code:    CodeDurationTooLong,
			Field:   "check_out",
			Message: "reservations are limited to 180 days",
		}
	}
	if draft.FacilityType == models.FacilityDorm {
		if verr := e.validateContact(draft.GuestName, draft.GuestEmail, "guest_name", "guest_email"); verr != nil {
			return verr
		}
	} else {
		if verr := e.validateContact(draft.InstructorName, draft.InstructorEmail, "instructor_name", "instructor_email"); verr != nil {
			return verr
		}
	}
	if len(strings.TrimSpace(draft.Purpose)) < MinPurposeLen {
		return &ValidationError{
			Code:    CodePurposeTooShort,
			Field:   "purpose",
			Message: "purpose must be at least 10 characters",
		}
	}
	return nil
}

// ValidateAndCreate runs the business-rule checks, re-checks for conflicts
// against the freshly loaded collection, and persists the new reservation.
// The conflict check always runs at submission time: a calendar rendered
// earlier may be stale.
func (e *Engine) ValidateAndCreate(ctx context.Context, draft Draft) (*models.Reservation, error) {
	if verr := e.validateDraft(draft); verr != nil {
		return nil, verr
	}

	reservations, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if hasConflictIn(reservations, draft.FacilityType, draft.FacilityUnit, draft.CheckIn, draft.CheckOut) {
		return nil, &ConflictError{
			FacilityType: draft.FacilityType,
			FacilityUnit: draft.FacilityUnit,
			BlockedDates: bookedDatesIn(reservations, draft.FacilityType, draft.FacilityUnit),
		}
	}

	contactName, contactEmail := draft.InstructorName, draft.InstructorEmail
	if draft.FacilityType == models.FacilityDorm {
		contactName, contactEmail = draft.GuestName, draft.GuestEmail
	}

	now := time.Now().UTC()
	reservation := models.Reservation{
		ID:              uuid.NewString(),
		FacilityType:    draft.FacilityType,
		FacilityUnit:    draft.FacilityUnit,
		ContactName:     strings.TrimSpace(contactName),
		ContactEmail:    strings.TrimSpace(contactEmail),
		CheckIn:         Day(draft.CheckIn),
		CheckOut:        Day(draft.CheckOut),
		Purpose:         strings.TrimSpace(draft.Purpose),
		SpecialRequests: strings.TrimSpace(draft.SpecialRequests),
		Status:          models.ReservationActive,
		NeedsCleaning:   false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	reservations = append(reservations, reservation)
	if err := e.store.Save(ctx, reservations); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Cancel marks the reservation cancelled. The cleaning flag is raised only
// when the reservation was still active, so cancelling twice never resets it.
func (e *Engine) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	return e.mutate(ctx, id, func(r *models.Reservation) {
		if r.Status == models.ReservationActive {
			r.NeedsCleaning = true
		}
		r.Status = models.ReservationCancelled
	})
}

// MarkNeedsCleaning flags the reservation for cleanup regardless of status.
func (e *Engine) MarkNeedsCleaning(ctx context.Context, id string) (*models.Reservation, error) {
	return e.mutate(ctx, id, func(r *models.Reservation) {
		r.NeedsCleaning = true
	})
}

func (e *Engine) mutate(ctx context.Context, id string, apply func(*models.Reservation)) (*models.Reservation, error) {
	reservations, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		if reservations[i].ID != id {
			continue
		}
		apply(&reservations[i])
		reservations[i].UpdatedAt = time.Now().UTC()
		if err := e.store.Save(ctx, reservations); err != nil {
			return nil, err
		}
		return &reservations[i], nil
	}
	return nil, ErrNotFound
}
