package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/quantumapps-dev/pspacademy/internal/booking"
	"github.com/quantumapps-dev/pspacademy/internal/models"
)

type FacilityHandler struct {
	engine *booking.Engine
	store  booking.Store
}

func NewFacilityHandler(engine *booking.Engine, store booking.Store) *FacilityHandler {
	return &FacilityHandler{engine: engine, store: store}
}

type CreateReservationRequest struct {
	Body struct {
		FacilityType    string    `json:"facility_type" doc:"One of dorm, classroom, range, amphitheater, auditorium, gym, pool, other" required:"true"`
		FacilityUnit    string    `json:"facility_unit,omitempty" doc:"Room or classroom number; required for dorm and classroom"`
		GuestName       string    `json:"guest_name,omitempty" doc:"Guest contact name (dorm bookings)"`
		GuestEmail      string    `json:"guest_email,omitempty" doc:"Guest contact email (dorm bookings)"`
		InstructorName  string    `json:"instructor_name,omitempty" doc:"Instructor contact name (all other facility types)"`
		InstructorEmail string    `json:"instructor_email,omitempty" doc:"Instructor contact email (all other facility types)"`
		CheckIn         time.Time `json:"check_in" doc:"First reserved day" required:"true"`
		CheckOut        time.Time `json:"check_out" doc:"Last reserved day" required:"true"`
		Purpose         string    `json:"purpose" doc:"Reason for the reservation" required:"true"`
		SpecialRequests string    `json:"special_requests,omitempty"`
	}
}

type ReservationResponse struct {
	Body models.Reservation
}

func (h *FacilityHandler) HandleCreateReservation(ctx context.Context, input *CreateReservationRequest) (*ReservationResponse, error) {
	facilityType := models.FacilityType(input.Body.FacilityType)
	if !facilityType.Valid() {
		return nil, huma.Error400BadRequest("Unknown facility type: " + input.Body.FacilityType)
	}
	if facilityType.UnitScoped() && input.Body.FacilityUnit == "" {
		return nil, huma.Error400BadRequest("A facility unit is required for dorm and classroom bookings")
	}

	unit := input.Body.FacilityUnit
	if !facilityType.UnitScoped() {
		// Unit-less types are one shared instance; ignore any submitted unit
		// so every booking competes for it.
		unit = ""
	}

	reservation, err := h.engine.ValidateAndCreate(ctx, booking.Draft{
		FacilityType:    facilityType,
		FacilityUnit:    unit,
		GuestName:       input.Body.GuestName,
		GuestEmail:      input.Body.GuestEmail,
		InstructorName:  input.Body.InstructorName,
		InstructorEmail: input.Body.InstructorEmail,
		CheckIn:         input.Body.CheckIn,
		CheckOut:        input.Body.CheckOut,
		Purpose:         input.Body.Purpose,
		SpecialRequests: input.Body.SpecialRequests,
	})
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error422UnprocessableEntity(verr.Message, &huma.ErrorDetail{
				Location: "body." + verr.Field,
				Message:  string(verr.Code),
			})
		}
		var cerr *booking.ConflictError
		if errors.As(err, &cerr) {
			details := make([]error, 0, len(cerr.BlockedDates))
			for _, d := range cerr.BlockedDates {
				details = append(details, &huma.ErrorDetail{
					Location: "body.check_in",
					Message:  "booked",
					Value:    d.Format("2006-01-02"),
				})
			}
			return nil, huma.Error409Conflict(cerr.Error(), details...)
		}
		return nil, huma.Error500InternalServerError("Failed to create reservation: " + err.Error())
	}

	return &ReservationResponse{Body: *reservation}, nil
}

type ListReservationsRequest struct {
	FacilityType string `query:"facility_type" doc:"Filter by facility type"`
	FacilityUnit string `query:"facility_unit" doc:"Filter by facility unit"`
	Status       string `query:"status" doc:"Filter by status (active, completed, cancelled)"`
}

type ListReservationsResponse struct {
	Body []models.Reservation
}

func (h *FacilityHandler) HandleListReservations(ctx context.Context, input *ListReservationsRequest) (*ListReservationsResponse, error) {
	reservations, err := h.store.Load(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load reservations: " + err.Error())
	}

	filtered := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if input.FacilityType != "" && string(r.FacilityType) != input.FacilityType {
			continue
		}
		if input.FacilityUnit != "" && r.FacilityUnit != input.FacilityUnit {
			continue
		}
		if input.Status != "" && string(r.Status) != input.Status {
			continue
		}
		filtered = append(filtered, r)
	}

	return &ListReservationsResponse{Body: filtered}, nil
}

type BookedDatesRequest struct {
	FacilityType string `query:"facility_type" doc:"Facility type to check" required:"true"`
	FacilityUnit string `query:"facility_unit" doc:"Facility unit, when the type is unit-scoped"`
}

type BookedDatesResponse struct {
	Body struct {
		FacilityType string   `json:"facility_type"`
		FacilityUnit string   `json:"facility_unit,omitempty"`
		Dates        []string `json:"dates"`
	}
}

// HandleBookedDates backs the availability calendar: every returned date is a
// day the facility is already reserved and should render disabled.
func (h *FacilityHandler) HandleBookedDates(ctx context.Context, input *BookedDatesRequest) (*BookedDatesResponse, error) {
	facilityType := models.FacilityType(input.FacilityType)
	if !facilityType.Valid() {
		return nil, huma.Error400BadRequest("Unknown facility type: " + input.FacilityType)
	}

	unit := input.FacilityUnit
	if !facilityType.UnitScoped() {
		unit = ""
	}

	days, err := h.engine.BookedDates(ctx, facilityType, unit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute booked dates: " + err.Error())
	}

	res := &BookedDatesResponse{}
	res.Body.FacilityType = input.FacilityType
	res.Body.FacilityUnit = unit
	res.Body.Dates = make([]string, 0, len(days))
	for _, d := range days {
		res.Body.Dates = append(res.Body.Dates, d.Format("2006-01-02"))
	}
	return res, nil
}

type ReservationIDRequest struct {
	ID string `path:"id" doc:"Reservation id"`
}

func (h *FacilityHandler) HandleCancelReservation(ctx context.Context, input *ReservationIDRequest) (*ReservationResponse, error) {
	reservation, err := h.engine.Cancel(ctx, input.ID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, huma.Error404NotFound("Reservation not found")
		}
		return nil, huma.Error500InternalServerError("Failed to cancel reservation: " + err.Error())
	}
	return &ReservationResponse{Body: *reservation}, nil
}

func (h *FacilityHandler) HandleMarkNeedsCleaning(ctx context.Context, input *ReservationIDRequest) (*ReservationResponse, error) {
	reservation, err := h.engine.MarkNeedsCleaning(ctx, input.ID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, huma.Error404NotFound("Reservation not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update reservation: " + err.Error())
	}
	return &ReservationResponse{Body: *reservation}, nil
}
