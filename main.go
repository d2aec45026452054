package main

import (
	"log"
	"net/http"

	"hrdashboard/config"
	"hrdashboard/database"
	"hrdashboard/handlers"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the store
	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	handler := handlers.NewDashboardHandler(db, cfg)

	// Ingest the configured dataset. A failed load is not fatal: the
	// dashboard shows the error and accepts an upload instead.
	if err := handler.ReloadFromFile(cfg.DataPath); err != nil {
		log.Printf("Warning: failed to load dataset %s: %v", cfg.DataPath, err)
	}

	log.Printf("HR dashboard listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, handler.Routes()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
