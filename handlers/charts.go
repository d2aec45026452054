package handlers

import (
	"errors"
	"log"
	"net/http"

	"hrdashboard/charts"
	"hrdashboard/database"

	"github.com/gorilla/mux"
)

// Panel is one chart slot on the dashboard page. A non-empty Warning
// replaces the image.
type Panel struct {
	Name    string
	Title   string
	Src     string
	Warning string
}

type chartDef struct {
	title   string
	columns []string // optional source columns the chart needs
	render  func(h *DashboardHandler, f database.Filter) ([]byte, error)
}

// Page order of the chart panels.
var chartOrder = []string{
	"age", "gender", "department", "term-reasons",
	"performance", "salary-by-department", "recruitment", "age-salary",
}

var chartDefs = map[string]chartDef{
	"age": {
		title:   "Age Distribution",
		columns: []string{"Age"},
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			ages, err := h.db.GetAgeValues(f)
			if err != nil {
				return nil, err
			}
			return charts.Histogram("Age Distribution", ages, 20)
		},
	},
	"gender": {
		title: "Gender Distribution",
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			counts, err := h.db.ValueCounts("sex", f)
			if err != nil {
				return nil, err
			}
			return charts.Donut("Gender Distribution", counts)
		},
	},
	"department": {
		title: "Department Breakdown",
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			counts, err := h.db.ValueCounts("department", f)
			if err != nil {
				return nil, err
			}
			return charts.Bar("Department Breakdown", counts, charts.ColorPrimary)
		},
	},
	"term-reasons": {
		title:   "Termination Reasons",
		columns: []string{"Termd", "TermReason"},
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			counts, err := h.db.GetTerminationReasons(f)
			if err != nil {
				return nil, err
			}
			return charts.Bar("Termination Reasons", counts, charts.ColorAccent)
		},
	},
	"performance": {
		title:   "Performance Score Distribution",
		columns: []string{"PerformanceScore"},
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			counts, err := h.db.ValueCounts("performance_score", f)
			if err != nil {
				return nil, err
			}
			return charts.Bar("Performance Score Distribution", counts, charts.ColorPrimary)
		},
	},
	"salary-by-department": {
		title:   "Average Salary by Department",
		columns: []string{"Salary"},
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			means, err := h.db.GetAvgSalaryByDepartment(f)
			if err != nil {
				return nil, err
			}
			return charts.MeanBar("Average Salary by Department", means)
		},
	},
	"recruitment": {
		title:   "Recruitment Sources",
		columns: []string{"RecruitmentSource"},
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			counts, err := h.db.ValueCounts("recruitment_source", f)
			if err != nil {
				return nil, err
			}
			return charts.Bar("Recruitment Sources", counts, charts.ColorPrimary)
		},
	},
	"age-salary": {
		title:   "Age vs Salary",
		columns: []string{"Age", "Salary"},
		render: func(h *DashboardHandler, f database.Filter) ([]byte, error) {
			points, err := h.db.GetAgeSalaryPoints(f)
			if err != nil {
				return nil, err
			}
			return charts.Scatter("Age vs Salary", "Age", "Salary", points)
		},
	},
}

// buildPanels decides, per chart, between an image URL and a warning.
func (h *DashboardHandler) buildPanels(filter database.Filter, total int, missing map[string]bool) []Panel {
	query := filterQuery(filter)

	var panels []Panel
	for _, name := range chartOrder {
		def := chartDefs[name]
		panel := Panel{Name: name, Title: def.title}

		disabled := ""
		for _, col := range def.columns {
			if missing[col] {
				disabled = col
				break
			}
		}

		switch {
		case disabled != "":
			panel.Warning = "column " + disabled + " missing from source file"
		case total == 0:
			panel.Warning = "no data for current filter"
		default:
			panel.Src = "/charts/" + name
			if query != "" {
				panel.Src += "?" + query
			}
		}

		panels = append(panels, panel)
	}

	return panels
}

func (h *DashboardHandler) handleChart(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	def, ok := chartDefs[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	loaded, _, missing := h.snapshot()
	if !loaded {
		http.Error(w, "no dataset loaded", http.StatusServiceUnavailable)
		return
	}
	for _, col := range def.columns {
		if missing[col] {
			http.Error(w, "chart disabled: column "+col+" missing", http.StatusNotFound)
			return
		}
	}

	png, err := def.render(h, parseFilter(r))
	if errors.Is(err, charts.ErrEmpty) {
		http.Error(w, "no data for current filter", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error rendering chart %s: %v", name, err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
