package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(
	r *chi.Mux,
	facilityHandler *FacilityHandler,
	applicationHandler *ApplicationHandler,
	registrationHandler *RegistrationHandler,
	profileHandler *ProfileHandler,
	classHandler *ClassHandler,
	scheduleHandler *ScheduleHandler,
	adminHandler *AdminHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Academy Administration API", "1.0.0")
	api := humachi.New(r, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Facility booking
	huma.Post(api, "/facilities/reservations", facilityHandler.HandleCreateReservation)
	huma.Get(api, "/facilities/reservations", facilityHandler.HandleListReservations)
	huma.Get(api, "/facilities/availability", facilityHandler.HandleBookedDates)
	huma.Post(api, "/facilities/reservations/{id}/cancel", facilityHandler.HandleCancelReservation)
	huma.Post(api, "/facilities/reservations/{id}/needs-cleaning", facilityHandler.HandleMarkNeedsCleaning)

	// Application intake
	huma.Post(api, "/applications", applicationHandler.HandleCreateApplication)
	huma.Get(api, "/applications", applicationHandler.HandleListApplications)
	huma.Get(api, "/applications/{id}", applicationHandler.HandleGetApplication)
	huma.Post(api, "/applications/{id}/review", applicationHandler.HandleReviewApplication)

	// Trainee registration
	huma.Post(api, "/registrations", registrationHandler.HandleRegister)
	huma.Get(api, "/registrations/history", registrationHandler.HandleHistory)

	// Profile directory
	huma.Post(api, "/profiles", profileHandler.HandleCreateProfile)
	huma.Get(api, "/profiles", profileHandler.HandleListProfiles)
	huma.Get(api, "/profiles/{id}", profileHandler.HandleGetProfile)
	huma.Put(api, "/profiles/{id}", profileHandler.HandleUpdateProfile)

	// Training classes
	huma.Post(api, "/classes", classHandler.HandleCreateClass)
	huma.Get(api, "/classes", classHandler.HandleListClasses)
	huma.Get(api, "/classes/{id}", classHandler.HandleGetClass)
	huma.Put(api, "/classes/{id}", classHandler.HandleUpdateClass)
	huma.Post(api, "/classes/{id}/materials", classHandler.HandleAddMaterial)

	// Scheduling and roster
	huma.Post(api, "/classes/{classID}/sessions", scheduleHandler.HandleCreateSession)
	huma.Get(api, "/classes/{classID}/sessions", scheduleHandler.HandleListSessions)
	huma.Post(api, "/classes/{classID}/roster", scheduleHandler.HandleEnroll)
	huma.Get(api, "/classes/{classID}/roster", scheduleHandler.HandleRoster)
	huma.Delete(api, "/classes/{classID}/roster/{profileID}", scheduleHandler.HandleUnenroll)

	// User and role administration
	huma.Post(api, "/admin/roles", adminHandler.HandleCreateRole)
	huma.Get(api, "/admin/roles", adminHandler.HandleListRoles)
	huma.Put(api, "/admin/roles/{id}", adminHandler.HandleUpdateRolePermissions)
	huma.Post(api, "/admin/users", adminHandler.HandleCreateUser)
	huma.Get(api, "/admin/users", adminHandler.HandleListUsers)
	huma.Put(api, "/admin/users/{id}", adminHandler.HandleUpdateUser)
	huma.Get(api, "/admin/access", adminHandler.HandleCheckAccess)
}
