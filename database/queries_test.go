package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.ReplaceEmployees(sampleEmployees()))
	return db
}

func sampleEmployees() []Employee {
	return []Employee{
		{Name: "Adams", Department: "Sales", Sex: "F", Age: 30, Salary: 60000,
			PerfScoreID: 3, PerformanceScore: "Fully Meets", EmploymentStatus: "Active",
			Termd: 0, EngagementSurvey: 4.0, RecruitmentSource: "LinkedIn"},
		{Name: "Baker", Department: "Sales", Sex: "M", Age: 40, Salary: 70000,
			PerfScoreID: 4, PerformanceScore: "Exceeds", EmploymentStatus: "Active",
			Termd: 0, EngagementSurvey: 5.0, RecruitmentSource: "Indeed"},
		{Name: "Clark", Department: "IT/IS", Sex: "F", Age: 50, Salary: 90000,
			PerfScoreID: 3, PerformanceScore: "Fully Meets",
			EmploymentStatus: "Voluntarily Terminated", Termd: 1,
			TermReason: "career change", EngagementSurvey: 3.0, RecruitmentSource: "LinkedIn"},
		{Name: "Dole", Department: "Production", Sex: "M", Age: 20, Salary: 40000,
			PerfScoreID: 2, PerformanceScore: "Needs Improvement",
			EmploymentStatus: "Terminated for Cause", Termd: 1,
			TermReason: "attendance", EngagementSurvey: 2.0, RecruitmentSource: "Website"},
	}
}

func TestFilteredViewMembership(t *testing.T) {
	db := newTestDB(t)

	filter := Filter{Departments: []string{"Sales", "IT/IS"}}
	employees, err := db.GetEmployees(filter)
	require.NoError(t, err)

	// Every row's value is in the selected subset
	for _, e := range employees {
		assert.Contains(t, []string{"Sales", "IT/IS"}, e.Department)
	}

	// Row count equals the sum of per-value counts in the unfiltered table
	counts, err := db.ValueCounts("department", Filter{})
	require.NoError(t, err)

	sum := 0
	for _, vc := range counts {
		if vc.Value == "Sales" || vc.Value == "IT/IS" {
			sum += vc.Count
		}
	}
	assert.Equal(t, sum, len(employees))

	count, err := db.CountEmployees(filter)
	require.NoError(t, err)
	assert.Equal(t, len(employees), count)
}

func TestSelectingAllValuesReproducesUnfilteredTable(t *testing.T) {
	db := newTestDB(t)

	departments, err := db.DistinctValues("department")
	require.NoError(t, err)
	sexes, err := db.DistinctValues("sex")
	require.NoError(t, err)
	statuses, err := db.DistinctValues("employment_status")
	require.NoError(t, err)

	all, err := db.GetEmployees(Filter{})
	require.NoError(t, err)

	filtered, err := db.GetEmployees(Filter{
		Departments: departments,
		Sexes:       sexes,
		Statuses:    statuses,
	})
	require.NoError(t, err)

	assert.Equal(t, all, filtered)
}

func TestConjunctionAcrossColumns(t *testing.T) {
	db := newTestDB(t)

	employees, err := db.GetEmployees(Filter{
		Departments: []string{"Sales"},
		Sexes:       []string{"F"},
	})
	require.NoError(t, err)

	require.Len(t, employees, 1)
	assert.Equal(t, "Adams", employees[0].Name)
}

func TestGetAverages(t *testing.T) {
	db := newTestDB(t)

	// Reference means computed by hand over the fixture
	avg, err := db.GetAverages(Filter{})
	require.NoError(t, err)
	assert.InDelta(t, 35.0, avg.Age, 1e-9)
	assert.InDelta(t, 65000.0, avg.Salary, 1e-9)
	assert.InDelta(t, 3.0, avg.Performance, 1e-9)
	assert.InDelta(t, 3.5, avg.Engagement, 1e-9)

	avg, err = db.GetAverages(Filter{Departments: []string{"Sales"}})
	require.NoError(t, err)
	assert.InDelta(t, 35.0, avg.Age, 1e-9)
	assert.InDelta(t, 65000.0, avg.Salary, 1e-9)

	// Empty view yields zeroes, not an error
	avg, err = db.GetAverages(Filter{Departments: []string{"Nonexistent"}})
	require.NoError(t, err)
	assert.Zero(t, avg.Age)
	assert.Zero(t, avg.Salary)
}

func TestGetActiveTerminated(t *testing.T) {
	db := newTestDB(t)

	active, terminated, err := db.GetActiveTerminated(Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, active)
	assert.Equal(t, 2, terminated)

	active, terminated, err = db.GetActiveTerminated(Filter{Departments: []string{"Sales"}})
	require.NoError(t, err)
	assert.Equal(t, 2, active)
	assert.Equal(t, 0, terminated)
}

func TestGetTerminationReasons(t *testing.T) {
	db := newTestDB(t)

	reasons, err := db.GetTerminationReasons(Filter{})
	require.NoError(t, err)
	require.Len(t, reasons, 2)
	for _, vc := range reasons {
		assert.Contains(t, []string{"career change", "attendance"}, vc.Value)
		assert.Equal(t, 1, vc.Count)
	}

	// Filter applies on top of the Termd restriction
	reasons, err = db.GetTerminationReasons(Filter{Departments: []string{"Production"}})
	require.NoError(t, err)
	require.Len(t, reasons, 1)
	assert.Equal(t, "attendance", reasons[0].Value)
}

func TestValueCounts(t *testing.T) {
	db := newTestDB(t)

	counts, err := db.ValueCounts("department", Filter{})
	require.NoError(t, err)
	require.Len(t, counts, 3)

	// Descending by count, Sales first
	assert.Equal(t, ValueCount{Value: "Sales", Count: 2}, counts[0])

	total := 0
	for _, vc := range counts {
		total += vc.Count
	}
	assert.Equal(t, 4, total)

	_, err = db.ValueCounts("salary; DROP TABLE employees", Filter{})
	assert.Error(t, err)
}

func TestGetAvgSalaryByDepartment(t *testing.T) {
	db := newTestDB(t)

	means, err := db.GetAvgSalaryByDepartment(Filter{})
	require.NoError(t, err)
	require.Len(t, means, 3)

	byDept := make(map[string]float64)
	for _, gm := range means {
		byDept[gm.Group] = gm.Mean
	}
	assert.InDelta(t, 65000.0, byDept["Sales"], 1e-9)
	assert.InDelta(t, 90000.0, byDept["IT/IS"], 1e-9)
	assert.InDelta(t, 40000.0, byDept["Production"], 1e-9)
}

func TestGetAgeSalaryPoints(t *testing.T) {
	db := newTestDB(t)

	points, err := db.GetAgeSalaryPoints(Filter{Sexes: []string{"M"}})
	require.NoError(t, err)
	require.Len(t, points, 2)
	for _, p := range points {
		assert.Contains(t, []float64{20, 40}, p.X)
	}
}

func TestDistinctValues(t *testing.T) {
	db := newTestDB(t)

	values, err := db.DistinctValues("department")
	require.NoError(t, err)
	assert.Equal(t, []string{"IT/IS", "Production", "Sales"}, values)

	_, err = db.DistinctValues("nope")
	assert.Error(t, err)
}

func TestAddEmployee(t *testing.T) {
	db := newTestDB(t)

	id, err := db.AddEmployee(Employee{
		Name: "Extra", Department: "Sales", Sex: "F", EmploymentStatus: "Active",
	})
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	count, err := db.CountEmployees(Filter{Departments: []string{"Sales"}})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReplaceEmployeesSwapsDataset(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.ReplaceEmployees([]Employee{
		{Name: "Solo", Department: "Admin Offices", Sex: "F", EmploymentStatus: "Active"},
	}))

	count, err := db.CountEmployees(Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
