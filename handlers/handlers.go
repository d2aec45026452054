package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"sync"

	"hrdashboard/config"
	"hrdashboard/database"
	"hrdashboard/dataset"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	db     *database.DB
	config *config.Config

	mu      sync.RWMutex
	loaded  bool
	loadErr error
	missing map[string]bool
}

func NewDashboardHandler(db *database.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		db:      db,
		config:  cfg,
		missing: make(map[string]bool),
	}
}

func (h *DashboardHandler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.handleDashboard).Methods(http.MethodGet)
	r.HandleFunc("/charts/{name}", h.handleChart).Methods(http.MethodGet)
	r.HandleFunc("/export", h.handleExport).Methods(http.MethodGet)
	r.HandleFunc("/upload", h.handleUploadForm).Methods(http.MethodGet)
	r.HandleFunc("/upload", h.handleUpload).Methods(http.MethodPost)
	return r
}

// ReloadFromFile ingests a dataset file and swaps it into the store.
// On failure the previous dataset (if any) stays in place and the
// error is kept for the dashboard to display.
func (h *DashboardHandler) ReloadFromFile(path string) error {
	employees, report, err := dataset.LoadFile(path)
	if err != nil {
		h.mu.Lock()
		if !h.loaded {
			h.loadErr = err
		}
		h.mu.Unlock()
		return err
	}

	if err := h.db.ReplaceEmployees(employees); err != nil {
		return err
	}

	missing := make(map[string]bool)
	for _, col := range report.MissingColumns {
		missing[col] = true
	}

	h.mu.Lock()
	h.loaded = true
	h.loadErr = nil
	h.missing = missing
	h.mu.Unlock()

	log.Printf("Dataset loaded: %d rows, %d skipped, %d optional columns missing",
		report.Rows, report.Skipped, len(report.MissingColumns))
	return nil
}

func (h *DashboardHandler) snapshot() (loaded bool, loadErr error, missing map[string]bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	missing = make(map[string]bool, len(h.missing))
	for col := range h.missing {
		missing[col] = true
	}
	return h.loaded, h.loadErr, missing
}

// parseFilter reads the sidebar selections from the query string.
// Absent params mean "all values".
func parseFilter(r *http.Request) database.Filter {
	q := r.URL.Query()
	return database.Filter{
		Departments: q["dept"],
		Sexes:       q["sex"],
		Statuses:    q["status"],
	}
}

// filterQuery re-encodes a filter for chart image URLs and the export
// link, so every panel sees the same view.
func filterQuery(f database.Filter) string {
	q := url.Values{}
	for _, d := range f.Departments {
		q.Add("dept", d)
	}
	for _, s := range f.Sexes {
		q.Add("sex", s)
	}
	for _, s := range f.Statuses {
		q.Add("status", s)
	}
	return q.Encode()
}

type dashboardData struct {
	Filters    []FilterWidget
	Total      int
	Averages   database.Averages
	Active     int
	Terminated int
	Panels     []Panel
	Employees  []database.Employee
	Warnings   []string
	Query      string
}

func (h *DashboardHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loaded, loadErr, missing := h.snapshot()
	if !loaded {
		h.renderLoadError(w, loadErr)
		return
	}

	filter := parseFilter(r)

	data := dashboardData{Query: filterQuery(filter)}

	var err error
	if data.Filters, err = h.buildFilterWidgets(filter); err != nil {
		h.serverError(w, "building filter widgets", err)
		return
	}
	if data.Total, err = h.db.CountEmployees(filter); err != nil {
		h.serverError(w, "counting employees", err)
		return
	}
	if data.Averages, err = h.db.GetAverages(filter); err != nil {
		h.serverError(w, "computing averages", err)
		return
	}
	if data.Active, data.Terminated, err = h.db.GetActiveTerminated(filter); err != nil {
		h.serverError(w, "counting active/terminated", err)
		return
	}
	if data.Employees, err = h.db.GetEmployees(filter); err != nil {
		h.serverError(w, "querying employees", err)
		return
	}

	data.Panels = h.buildPanels(filter, data.Total, missing)
	for col := range missing {
		data.Warnings = append(data.Warnings,
			fmt.Sprintf("Column %s is missing from the source file; related charts are disabled.", col))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering dashboard: %v", err)
	}
}

func (h *DashboardHandler) renderLoadError(w http.ResponseWriter, loadErr error) {
	message := "No dataset has been loaded yet."
	switch {
	case loadErr == nil:
	case errors.Is(loadErr, fs.ErrNotExist):
		message = fmt.Sprintf("Dataset file not found: %v", loadErr)
	case errors.Is(loadErr, dataset.ErrNoData):
		message = "Dataset file is empty: no employee rows were found."
	default:
		message = fmt.Sprintf("Failed to load dataset: %v", loadErr)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	if err := errorTmpl.Execute(w, struct{ Message string }{message}); err != nil {
		log.Printf("Error rendering error page: %v", err)
	}
}

func (h *DashboardHandler) serverError(w http.ResponseWriter, action string, err error) {
	log.Printf("Error %s: %v", action, err)
	http.Error(w, "internal error: "+action, http.StatusInternalServerError)
}
