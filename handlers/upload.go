package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"hrdashboard/dataset"
	"hrdashboard/utils"

	"github.com/google/uuid"
)

const maxUploadBytes = 32 << 20

type uploadData struct {
	Error      string
	NeedsToken bool
}

func (h *DashboardHandler) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	h.renderUpload(w, http.StatusOK, "")
}

func (h *DashboardHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderUpload(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	if !h.config.IsAdmin(r.FormValue("token")) {
		h.renderUpload(w, http.StatusForbidden, "Invalid admin token")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.renderUpload(w, http.StatusBadRequest, "Attach a dataset file to upload")
		return
	}
	defer file.Close()

	if !utils.IsDatasetFile(header.Filename) {
		h.renderUpload(w, http.StatusBadRequest, "File must be .csv, .xlsx or .xls")
		return
	}

	// Stage the upload in a temp file so the Excel reader can open it
	tmpFile := filepath.Join(os.TempDir(),
		fmt.Sprintf("upload_%s%s", uuid.NewString(), utils.GetFileExtension(header.Filename)))
	defer os.Remove(tmpFile)

	out, err := os.Create(tmpFile)
	if err != nil {
		h.renderUpload(w, http.StatusInternalServerError, "Failed to stage upload: "+err.Error())
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		h.renderUpload(w, http.StatusInternalServerError, "Failed to stage upload: "+err.Error())
		return
	}
	out.Close()

	if err := h.ReloadFromFile(tmpFile); err != nil {
		log.Printf("Upload of %s rejected: %v", header.Filename, err)
		h.renderUpload(w, http.StatusBadRequest, "Failed to load dataset: "+err.Error())
		return
	}

	log.Printf("Dataset replaced from upload %s", header.Filename)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DashboardHandler) renderUpload(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	data := uploadData{Error: message, NeedsToken: h.config.AdminToken != ""}
	if err := uploadTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering upload page: %v", err)
	}
}

func (h *DashboardHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	loaded, _, _ := h.snapshot()
	if !loaded {
		http.Error(w, "no dataset loaded", http.StatusServiceUnavailable)
		return
	}

	employees, err := h.db.GetEmployees(parseFilter(r))
	if err != nil {
		h.serverError(w, "querying employees", err)
		return
	}

	filename := fmt.Sprintf("employees_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := dataset.ExportXLSX(employees, w); err != nil {
		log.Printf("Error exporting employees: %v", err)
	}
}
