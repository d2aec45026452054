package database

import (
	"database/sql"
	"log"
)

func InitDB(db *sql.DB) error {
	// Employees table. One row per CSV record; replaced wholesale on re-upload.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			emp_id INTEGER,
			name TEXT NOT NULL,
			department TEXT NOT NULL,
			position TEXT,
			manager_name TEXT,
			sex TEXT NOT NULL,
			gender_id INTEGER,
			age INTEGER,
			salary REAL,
			performance_score TEXT,
			perf_score_id INTEGER,
			employment_status TEXT NOT NULL,
			termd INTEGER NOT NULL DEFAULT 0,
			term_reason TEXT,
			recruitment_source TEXT,
			engagement_survey REAL,
			absences INTEGER,
			date_of_hire DATETIME,
			date_of_termination DATETIME
		)
	`)
	if err != nil {
		return err
	}

	// Index for the filter columns
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_employees_filters
		ON employees (department, sex, employment_status)
	`)
	if err != nil {
		return err
	}

	log.Println("Database initialized successfully")
	return nil
}
