package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"hrdashboard/database"
	"hrdashboard/utils"
)

// ErrNoData marks a source file with no employee rows.
var ErrNoData = errors.New("dataset contains no data rows")

// Required columns: filters and the table cannot work without them.
var requiredColumns = []string{"employeename", "department", "sex", "employmentstatus"}

// Optional columns, keyed by normalized header. A missing one disables
// the charts that read it instead of failing the load.
var optionalColumns = map[string]string{
	"age":               "Age",
	"salary":            "Salary",
	"performancescore":  "PerformanceScore",
	"perfscoreid":       "PerfScoreID",
	"termd":             "Termd",
	"termreason":        "TermReason",
	"recruitmentsource": "RecruitmentSource",
	"engagementsurvey":  "EngagementSurvey",
}

// Report summarizes one ingest.
type Report struct {
	Rows           int
	Skipped        int
	MissingColumns []string
}

// LoadFile ingests a CSV or Excel employee dataset.
func LoadFile(path string) ([]database.Employee, *Report, error) {
	if utils.IsExcelFile(path) {
		return LoadExcelFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return LoadCSV(f)
}

func LoadCSV(r io.Reader) ([]database.Employee, *Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return parseRows(rows)
}

// parseRows converts header + data rows into employee records. Shared
// by the CSV and Excel paths.
func parseRows(rows [][]string) ([]database.Employee, *Report, error) {
	if len(rows) == 0 {
		return nil, nil, ErrNoData
	}

	headerIndex := make(map[string]int)
	for i, header := range rows[0] {
		headerIndex[utils.NormalizeHeader(header)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := headerIndex[col]; !ok {
			return nil, nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	report := &Report{}
	for key, label := range optionalColumns {
		if _, ok := headerIndex[key]; !ok {
			// Age can still be derived from a DOB column
			if key == "age" {
				if _, hasDOB := headerIndex["dob"]; hasDOB {
					continue
				}
			}
			report.MissingColumns = append(report.MissingColumns, label)
		}
	}

	cell := func(row []string, key string) string {
		idx, ok := headerIndex[key]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	now := time.Now()
	var employees []database.Employee
	for rowIndex, row := range rows[1:] {
		name := cell(row, "employeename")
		department := cell(row, "department")

		// Skip blank rows
		if name == "" && department == "" {
			report.Skipped++
			continue
		}

		e := database.Employee{
			Name:              name,
			Department:        department,
			Position:          cell(row, "position"),
			ManagerName:       cell(row, "managername"),
			Sex:               cell(row, "sex"),
			PerformanceScore:  cell(row, "performancescore"),
			EmploymentStatus:  cell(row, "employmentstatus"),
			TermReason:        cell(row, "termreason"),
			RecruitmentSource: cell(row, "recruitmentsource"),
		}

		e.EmpID, _ = utils.ParseInt(cell(row, "empid"))
		e.GenderID, _ = utils.ParseInt(cell(row, "genderid"))
		e.PerfScoreID, _ = utils.ParseInt(cell(row, "perfscoreid"))
		e.Termd, _ = utils.ParseInt(cell(row, "termd"))
		e.Absences, _ = utils.ParseInt(cell(row, "absences"))

		var ok bool
		if e.Salary, ok = utils.ParseFloat(cell(row, "salary")); !ok && cell(row, "salary") != "" {
			log.Printf("Row %d: unparseable salary %q", rowIndex+2, cell(row, "salary"))
		}
		e.EngagementSurvey, _ = utils.ParseFloat(cell(row, "engagementsurvey"))

		if e.Age, ok = utils.ParseInt(cell(row, "age")); !ok {
			if dob, err := utils.ParseDate(cell(row, "dob")); err == nil {
				e.Age = utils.AgeAt(dob, now)
			}
		}

		if hired, err := utils.ParseDate(cell(row, "dateofhire")); err == nil {
			e.DateOfHire = &hired
		}
		if termed, err := utils.ParseDate(cell(row, "dateoftermination")); err == nil {
			e.DateOfTermination = &termed
		}

		employees = append(employees, e)
	}

	if len(employees) == 0 {
		return nil, nil, ErrNoData
	}

	report.Rows = len(employees)
	return employees, report, nil
}
