package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func NewDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := InitDB(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

const employeeColumns = `emp_id, name, department, position, manager_name, sex, gender_id,
	age, salary, performance_score, perf_score_id, employment_status, termd, term_reason,
	recruitment_source, engagement_survey, absences, date_of_hire, date_of_termination`

func (db *DB) AddEmployee(e Employee) (int, error) {
	result, err := db.Exec(
		`INSERT INTO employees (`+employeeColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.EmpID, e.Name, e.Department, e.Position, e.ManagerName, e.Sex, e.GenderID,
		e.Age, e.Salary, e.PerformanceScore, e.PerfScoreID, e.EmploymentStatus, e.Termd,
		e.TermReason, e.RecruitmentSource, e.EngagementSurvey, e.Absences,
		e.DateOfHire, e.DateOfTermination,
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	return int(id), err
}

// ReplaceEmployees swaps the whole dataset in one transaction. A failed
// upload leaves the previous rows untouched.
func (db *DB) ReplaceEmployees(employees []Employee) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM employees"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO employees (` + employeeColumns + `)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range employees {
		if _, err := stmt.Exec(
			e.EmpID, e.Name, e.Department, e.Position, e.ManagerName, e.Sex, e.GenderID,
			e.Age, e.Salary, e.PerformanceScore, e.PerfScoreID, e.EmploymentStatus, e.Termd,
			e.TermReason, e.RecruitmentSource, e.EngagementSurvey, e.Absences,
			e.DateOfHire, e.DateOfTermination,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("Replaced dataset: %d employees", len(employees))
	return nil
}

// whereClause builds the conjunction of membership tests for the
// selected filter values. Column names are fixed here, never taken
// from user input.
func (f Filter) whereClause() (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
		conds = append(conds, fmt.Sprintf("%s IN (%s)", column, placeholders))
		for _, v := range values {
			args = append(args, v)
		}
	}

	add("department", f.Departments)
	add("sex", f.Sexes)
	add("employment_status", f.Statuses)

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (db *DB) GetEmployees(filter Filter) ([]Employee, error) {
	where, args := filter.whereClause()

	rows, err := db.Query(
		`SELECT id, `+employeeColumns+` FROM employees`+where+` ORDER BY name`, args...)
	if err != nil {
		log.Printf("Error querying employees: %v", err)
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(
			&e.ID, &e.EmpID, &e.Name, &e.Department, &e.Position, &e.ManagerName, &e.Sex,
			&e.GenderID, &e.Age, &e.Salary, &e.PerformanceScore, &e.PerfScoreID,
			&e.EmploymentStatus, &e.Termd, &e.TermReason, &e.RecruitmentSource,
			&e.EngagementSurvey, &e.Absences, &e.DateOfHire, &e.DateOfTermination,
		); err != nil {
			log.Printf("Error scanning employee: %v", err)
			continue
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (db *DB) CountEmployees(filter Filter) (int, error) {
	where, args := filter.whereClause()

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM employees`+where, args...).Scan(&count)
	return count, err
}

// DistinctValues returns the option list for one filter widget,
// from the unfiltered table.
func (db *DB) DistinctValues(column string) ([]string, error) {
	col, ok := categoricalColumns[column]
	if !ok {
		return nil, fmt.Errorf("unknown column: %s", column)
	}

	rows, err := db.Query(
		`SELECT DISTINCT ` + col + ` FROM employees WHERE ` + col + ` != '' ORDER BY ` + col)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}
