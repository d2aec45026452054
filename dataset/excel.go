package dataset

import (
	"fmt"
	"io"

	"hrdashboard/database"

	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
)

// LoadExcelFile ingests employee records from the first sheet of an
// Excel workbook. Same header-mapped schema as the CSV path.
func LoadExcelFile(filePath string) ([]database.Employee, *Report, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("no sheets found in excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return parseRows(rows)
}

// ExportXLSX writes the filtered table as an Excel workbook.
func ExportXLSX(employees []database.Employee, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Employees")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headers := []string{
		"Name", "Department", "Position", "Sex", "Age", "Salary",
		"Performance", "Status", "Termination Reason", "Recruitment Source",
		"Engagement", "Date of Hire", "Date of Termination",
	}
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
	}

	for _, e := range employees {
		row := sheet.AddRow()

		row.AddCell().Value = e.Name
		row.AddCell().Value = e.Department
		row.AddCell().Value = e.Position
		row.AddCell().Value = e.Sex
		row.AddCell().SetInt(e.Age)
		row.AddCell().SetFloat(e.Salary)
		row.AddCell().Value = e.PerformanceScore
		row.AddCell().Value = e.EmploymentStatus
		row.AddCell().Value = e.TermReason
		row.AddCell().Value = e.RecruitmentSource
		row.AddCell().SetFloat(e.EngagementSurvey)

		hireCell := row.AddCell()
		if e.DateOfHire != nil {
			hireCell.Value = e.DateOfHire.Format("2006-01-02")
		}

		termCell := row.AddCell()
		if e.DateOfTermination != nil {
			termCell.Value = e.DateOfTermination.Format("2006-01-02")
		}
	}

	return file.Write(w)
}
