package database

import "time"

type Employee struct {
	ID                int        `json:"id"`
	EmpID             int        `json:"emp_id"`
	Name              string     `json:"name"`
	Department        string     `json:"department"`
	Position          string     `json:"position"`
	ManagerName       string     `json:"manager_name"`
	Sex               string     `json:"sex"`
	GenderID          int        `json:"gender_id"`
	Age               int        `json:"age"`
	Salary            float64    `json:"salary"`
	PerformanceScore  string     `json:"performance_score"`
	PerfScoreID       int        `json:"perf_score_id"`
	EmploymentStatus  string     `json:"employment_status"`
	Termd             int        `json:"termd"`
	TermReason        string     `json:"term_reason"`
	RecruitmentSource string     `json:"recruitment_source"`
	EngagementSurvey  float64    `json:"engagement_survey"`
	Absences          int        `json:"absences"`
	DateOfHire        *time.Time `json:"date_of_hire"`
	DateOfTermination *time.Time `json:"date_of_termination"`
}

// Filter holds the sidebar selections. An empty slice for a column
// means "all values" for that column.
type Filter struct {
	Departments []string
	Sexes       []string
	Statuses    []string
}

func (f Filter) IsEmpty() bool {
	return len(f.Departments) == 0 && len(f.Sexes) == 0 && len(f.Statuses) == 0
}

// ValueCount is one row of a group-wise count (value_counts).
type ValueCount struct {
	Value string
	Count int
}

// GroupMean is one row of a group-by mean.
type GroupMean struct {
	Group string
	Mean  float64
}

// Averages are the KPI means over the filtered view.
type Averages struct {
	Age         float64
	Salary      float64
	Performance float64
	Engagement  float64
}

// Point is one (x, y) pair for the scatter panel.
type Point struct {
	X float64
	Y float64
}
