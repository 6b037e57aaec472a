package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/quantumapps-dev/pspacademy/internal/booking"
	"github.com/quantumapps-dev/pspacademy/internal/models"
)

func newFacilityHandler(t *testing.T) *FacilityHandler {
	t.Helper()
	store := booking.NewGormStore(newTestDB(t))
	return NewFacilityHandler(booking.NewEngine(store), store)
}

func dormRequest(checkIn, checkOut time.Time) *CreateReservationRequest {
	req := &CreateReservationRequest{}
	req.Body.FacilityType = "dorm"
	req.Body.FacilityUnit = "101"
	req.Body.GuestName = "Alex Moreno"
	req.Body.GuestEmail = "alex.moreno@example.com"
	req.Body.CheckIn = checkIn
	req.Body.CheckOut = checkOut
	req.Body.Purpose = "visiting cadre lodging"
	return req
}

func TestHandleCreateReservation(t *testing.T) {
	handler := newFacilityHandler(t)
	ctx := context.Background()

	checkIn := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	resp, err := handler.HandleCreateReservation(ctx, dormRequest(checkIn, checkOut))
	if err != nil {
		t.Fatalf("HandleCreateReservation failed: %v", err)
	}
	if resp.Body.Status != models.ReservationActive {
		t.Errorf("expected active status, got %s", resp.Body.Status)
	}
	if resp.Body.ID == "" {
		t.Error("expected generated reservation id")
	}

	t.Run("overlapping booking rejected with 409", func(t *testing.T) {
		_, err := handler.HandleCreateReservation(ctx, dormRequest(
			time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		))
		assertStatus(t, err, 409)
	})

	t.Run("adjacent booking accepted", func(t *testing.T) {
		_, err := handler.HandleCreateReservation(ctx, dormRequest(
			time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		))
		if err != nil {
			t.Fatalf("expected booking starting the day after check-out to succeed: %v", err)
		}
	})
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", want)
	}
	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("expected huma.StatusError, got %T: %v", err, err)
	}
	if statusErr.GetStatus() != want {
		t.Errorf("expected status %d, got %d (%v)", want, statusErr.GetStatus(), err)
	}
}

func TestHandleCreateReservation_UnitRequired(t *testing.T) {
	handler := newFacilityHandler(t)

	req := dormRequest(
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
	)
	req.Body.FacilityUnit = ""

	_, err := handler.HandleCreateReservation(context.Background(), req)
	assertStatus(t, err, 400)
}

func TestHandleCreateReservation_UnknownType(t *testing.T) {
	handler := newFacilityHandler(t)

	req := dormRequest(
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
	)
	req.Body.FacilityType = "stadium"

	_, err := handler.HandleCreateReservation(context.Background(), req)
	assertStatus(t, err, 400)
}

func TestHandleCreateReservation_ValidationFlagged(t *testing.T) {
	handler := newFacilityHandler(t)

	req := dormRequest(
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
	)
	req.Body.GuestEmail = ""

	_, err := handler.HandleCreateReservation(context.Background(), req)
	assertStatus(t, err, 422)
}

func TestHandleCreateReservation_UnitlessTypeIgnoresUnit(t *testing.T) {
	handler := newFacilityHandler(t)
	ctx := context.Background()

	mkReq := func(unit string) *CreateReservationRequest {
		req := &CreateReservationRequest{}
		req.Body.FacilityType = "range"
		req.Body.FacilityUnit = unit
		req.Body.InstructorName = "Sam Ortiz"
		req.Body.InstructorEmail = "sam.ortiz@example.com"
		req.Body.CheckIn = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		req.Body.CheckOut = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
		req.Body.Purpose = "qualification fire"
		return req
	}

	if _, err := handler.HandleCreateReservation(ctx, mkReq("lane-1")); err != nil {
		t.Fatalf("first range booking failed: %v", err)
	}

	// A different "unit" must still conflict: the range is one shared instance.
	_, err := handler.HandleCreateReservation(ctx, mkReq("lane-2"))
	assertStatus(t, err, 409)
}

func TestHandleBookedDates(t *testing.T) {
	handler := newFacilityHandler(t)
	ctx := context.Background()

	req := dormRequest(
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	)
	if _, err := handler.HandleCreateReservation(ctx, req); err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	resp, err := handler.HandleBookedDates(ctx, &BookedDatesRequest{FacilityType: "dorm", FacilityUnit: "101"})
	if err != nil {
		t.Fatalf("HandleBookedDates failed: %v", err)
	}

	want := []string{"2025-03-01", "2025-03-02", "2025-03-03"}
	if len(resp.Body.Dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(resp.Body.Dates))
	}
	for i, d := range want {
		if resp.Body.Dates[i] != d {
			t.Errorf("date %d: expected %s, got %s", i, d, resp.Body.Dates[i])
		}
	}

	t.Run("other unit is clear", func(t *testing.T) {
		resp, err := handler.HandleBookedDates(ctx, &BookedDatesRequest{FacilityType: "dorm", FacilityUnit: "102"})
		if err != nil {
			t.Fatalf("HandleBookedDates failed: %v", err)
		}
		if len(resp.Body.Dates) != 0 {
			t.Errorf("expected no booked dates for dorm 102, got %v", resp.Body.Dates)
		}
	})
}

func TestHandleCancelReservation(t *testing.T) {
	handler := newFacilityHandler(t)
	ctx := context.Background()

	created, err := handler.HandleCreateReservation(ctx, dormRequest(
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
	))
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	cancelled, err := handler.HandleCancelReservation(ctx, &ReservationIDRequest{ID: created.Body.ID})
	if err != nil {
		t.Fatalf("HandleCancelReservation failed: %v", err)
	}
	if cancelled.Body.Status != models.ReservationCancelled {
		t.Errorf("expected cancelled, got %s", cancelled.Body.Status)
	}
	if !cancelled.Body.NeedsCleaning {
		t.Error("cancelling an active reservation must flag cleaning")
	}

	t.Run("cancelled dates free the calendar", func(t *testing.T) {
		resp, err := handler.HandleBookedDates(ctx, &BookedDatesRequest{FacilityType: "dorm", FacilityUnit: "101"})
		if err != nil {
			t.Fatalf("HandleBookedDates failed: %v", err)
		}
		if len(resp.Body.Dates) != 0 {
			t.Errorf("expected cancelled reservation's dates released, got %v", resp.Body.Dates)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		_, err := handler.HandleCancelReservation(ctx, &ReservationIDRequest{ID: "nope"})
		assertStatus(t, err, 404)
	})
}
