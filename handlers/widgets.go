package handlers

import "hrdashboard/database"

// FilterWidget is one sidebar checkbox group: the distinct values of a
// categorical column, with the current selection marked.
type FilterWidget struct {
	Title   string
	Param   string
	Options []FilterOption
}

type FilterOption struct {
	Value    string
	Selected bool
}

var filterColumns = []struct {
	title  string
	param  string
	column string
	values func(f database.Filter) []string
}{
	{"Department", "dept", "department", func(f database.Filter) []string { return f.Departments }},
	{"Gender", "sex", "sex", func(f database.Filter) []string { return f.Sexes }},
	{"Employment Status", "status", "employment_status", func(f database.Filter) []string { return f.Statuses }},
}

func (h *DashboardHandler) buildFilterWidgets(filter database.Filter) ([]FilterWidget, error) {
	var widgets []FilterWidget

	for _, fc := range filterColumns {
		values, err := h.db.DistinctValues(fc.column)
		if err != nil {
			return nil, err
		}

		selected := make(map[string]bool)
		for _, v := range fc.values(filter) {
			selected[v] = true
		}

		widget := FilterWidget{Title: fc.title, Param: fc.param}
		for _, v := range values {
			widget.Options = append(widget.Options, FilterOption{
				Value:    v,
				Selected: selected[v],
			})
		}

		widgets = append(widgets, widget)
	}

	return widgets, nil
}
