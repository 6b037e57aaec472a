package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quantumapps-dev/pspacademy/internal/booking"
	"github.com/quantumapps-dev/pspacademy/internal/config"
	"github.com/quantumapps-dev/pspacademy/internal/database"
	"github.com/quantumapps-dev/pspacademy/internal/handlers"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	store := booking.NewGormStore(db)
	engine := booking.NewEngine(store)

	facilityHandler := handlers.NewFacilityHandler(engine, store)
	applicationHandler := handlers.NewApplicationHandler(db)
	registrationHandler := handlers.NewRegistrationHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)
	classHandler := handlers.NewClassHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r,
		facilityHandler,
		applicationHandler,
		registrationHandler,
		profileHandler,
		classHandler,
		scheduleHandler,
		adminHandler,
	)

	// Start Server
	log.Printf("Starting %s server on port %s", cfg.AcademyName, cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
