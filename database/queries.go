package database

import (
	"fmt"
	"log"
)

// categoricalColumns whitelists the columns value counts and filter
// widgets may reference.
var categoricalColumns = map[string]string{
	"department":         "department",
	"sex":                "sex",
	"employment_status":  "employment_status",
	"term_reason":        "term_reason",
	"recruitment_source": "recruitment_source",
	"performance_score":  "performance_score",
	"position":           "position",
	"manager_name":       "manager_name",
}

// ValueCounts returns per-value row counts of a categorical column over
// the filtered view, descending by count.
func (db *DB) ValueCounts(column string, filter Filter) ([]ValueCount, error) {
	col, ok := categoricalColumns[column]
	if !ok {
		return nil, fmt.Errorf("unknown column: %s", column)
	}

	where, args := filter.whereClause()

	rows, err := db.Query(fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM employees%s GROUP BY %s ORDER BY COUNT(*) DESC, %s`,
		col, where, col, col), args...)
	if err != nil {
		log.Printf("Error counting %s values: %v", column, err)
		return nil, err
	}
	defer rows.Close()

	var counts []ValueCount
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, vc)
	}

	return counts, rows.Err()
}

// GetAverages computes the KPI means over the filtered view. Empty view
// yields zeroes.
func (db *DB) GetAverages(filter Filter) (Averages, error) {
	where, args := filter.whereClause()

	var avg Averages
	err := db.QueryRow(
		`SELECT COALESCE(AVG(age), 0), COALESCE(AVG(salary), 0),
		        COALESCE(AVG(perf_score_id), 0), COALESCE(AVG(engagement_survey), 0)
		 FROM employees`+where, args...,
	).Scan(&avg.Age, &avg.Salary, &avg.Performance, &avg.Engagement)
	return avg, err
}

// GetActiveTerminated splits the filtered view by the Termd flag.
func (db *DB) GetActiveTerminated(filter Filter) (active, terminated int, err error) {
	where, args := filter.whereClause()

	err = db.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN termd = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN termd = 1 THEN 1 ELSE 0 END), 0)
		 FROM employees`+where, args...,
	).Scan(&active, &terminated)
	return active, terminated, err
}

// GetTerminationReasons counts TermReason values among terminated
// employees in the filtered view.
func (db *DB) GetTerminationReasons(filter Filter) ([]ValueCount, error) {
	where, args := filter.whereClause()
	if where == "" {
		where = " WHERE termd = 1"
	} else {
		where += " AND termd = 1"
	}

	rows, err := db.Query(
		`SELECT term_reason, COUNT(*) FROM employees`+where+
			` GROUP BY term_reason ORDER BY COUNT(*) DESC, term_reason`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ValueCount
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, vc)
	}

	return counts, rows.Err()
}

// GetAvgSalaryByDepartment is the group-by mean behind the salary panel.
func (db *DB) GetAvgSalaryByDepartment(filter Filter) ([]GroupMean, error) {
	where, args := filter.whereClause()

	rows, err := db.Query(
		`SELECT department, AVG(salary) FROM employees`+where+
			` GROUP BY department ORDER BY AVG(salary) DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var means []GroupMean
	for rows.Next() {
		var gm GroupMean
		if err := rows.Scan(&gm.Group, &gm.Mean); err != nil {
			return nil, err
		}
		means = append(means, gm)
	}

	return means, rows.Err()
}

// GetAgeValues returns the age column of the filtered view for the
// age histogram.
func (db *DB) GetAgeValues(filter Filter) ([]float64, error) {
	where, args := filter.whereClause()

	rows, err := db.Query(`SELECT age FROM employees`+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ages []float64
	for rows.Next() {
		var age float64
		if err := rows.Scan(&age); err != nil {
			return nil, err
		}
		ages = append(ages, age)
	}

	return ages, rows.Err()
}

// GetAgeSalaryPoints returns (age, salary) pairs for the scatter panel.
func (db *DB) GetAgeSalaryPoints(filter Filter) ([]Point, error) {
	where, args := filter.whereClause()

	rows, err := db.Query(`SELECT age, salary FROM employees`+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []Point
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}
