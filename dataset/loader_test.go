package dataset

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hrdashboard/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Employee_Name,EmpID,GenderID,Sex,Age,Salary,PerformanceScore,PerfScoreID,EmploymentStatus,Termd,TermReason,RecruitmentSource,EngagementSurvey,Department,Position,ManagerName,DateofHire,DateofTermination,Absences
"Adinolfi, Wilson",10026,1,M,41,"$62,506.00",Exceeds,4,Active,0,N/A-StillEmployed,LinkedIn,4.6,Production,Production Technician I,Michael Albert,7/5/2011,,1
"Ait Sidi, Karthikeyan",10084,1,M,49,104437,Fully Meets,3,Voluntarily Terminated,1,career change,Indeed,4.96,IT/IS,Sr. DBA,Simon Roup,3/30/2015,6/16/2016,17
"Akinkuolie, Sarah",10196,0,F,35,64955,Fully Meets,3,Active,0,N/A-StillEmployed,LinkedIn,3.02,Sales,Area Sales Manager,Kissy Sullivan,7/5/2011,,3
`

func TestLoadCSV(t *testing.T) {
	employees, report, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, employees, 3)

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 0, report.Skipped)
	assert.Empty(t, report.MissingColumns)

	e := employees[0]
	assert.Equal(t, "Adinolfi, Wilson", e.Name)
	assert.Equal(t, 10026, e.EmpID)
	assert.Equal(t, "Production", e.Department)
	assert.Equal(t, "M", e.Sex)
	assert.Equal(t, 41, e.Age)
	assert.Equal(t, 62506.0, e.Salary)
	assert.Equal(t, 4, e.PerfScoreID)
	assert.Equal(t, 0, e.Termd)
	require.NotNil(t, e.DateOfHire)
	assert.Equal(t, 2011, e.DateOfHire.Year())
	assert.Nil(t, e.DateOfTermination)

	terminated := employees[1]
	assert.Equal(t, 1, terminated.Termd)
	assert.Equal(t, "career change", terminated.TermReason)
	require.NotNil(t, terminated.DateOfTermination)
}

func TestLoadCSVSkipsBlankRows(t *testing.T) {
	csv := "Employee_Name,Department,Sex,EmploymentStatus\n" +
		"Smith,Sales,F,Active\n" +
		",,,\n" +
		"Jones,IT/IS,M,Active\n"

	employees, report, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, employees, 2)
	assert.Equal(t, 1, report.Skipped)
}

func TestLoadCSVMissingRequiredColumn(t *testing.T) {
	csv := "Employee_Name,Sex,EmploymentStatus\nSmith,F,Active\n"

	_, _, err := LoadCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column: department")
}

func TestLoadCSVReportsMissingOptionalColumns(t *testing.T) {
	csv := "Employee_Name,Department,Sex,EmploymentStatus,Age\nSmith,Sales,F,Active,30\n"

	employees, report, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, employees, 1)

	assert.Contains(t, report.MissingColumns, "Salary")
	assert.Contains(t, report.MissingColumns, "TermReason")
	assert.NotContains(t, report.MissingColumns, "Age")
}

func TestLoadCSVDerivesAgeFromDOB(t *testing.T) {
	csv := "Employee_Name,Department,Sex,EmploymentStatus,DOB\nSmith,Sales,F,Active,7/10/1983\n"

	employees, report, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, employees, 1)

	assert.Greater(t, employees[0].Age, 30)
	assert.NotContains(t, report.MissingColumns, "Age")
}

func TestLoadCSVEmpty(t *testing.T) {
	_, _, err := LoadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoData)

	// Header only, no data rows
	_, _, err = LoadCSV(strings.NewReader("Employee_Name,Department,Sex,EmploymentStatus\n"))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLoadFileNotFound(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestExportXLSX(t *testing.T) {
	hire := time.Date(2011, 7, 5, 0, 0, 0, 0, time.UTC)
	employees := []database.Employee{
		{
			Name: "Smith", Department: "Sales", Position: "Manager", Sex: "F",
			Age: 35, Salary: 64955, PerformanceScore: "Fully Meets",
			EmploymentStatus: "Active", DateOfHire: &hire,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(employees, &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Smith", rows[1][0])
	assert.Equal(t, "Sales", rows[1][1])
	assert.Equal(t, "2011-07-05", rows[1][11])
}
