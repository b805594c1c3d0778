package documents

import (
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	jobsSheet  = "Jobs"
	cellLayout = "2006-01-02 15:04"
)

var jobsHeader = []any{
	"Job ID", "Customer Name", "Phone", "Vehicle Number", "Car Model", "Work Description",
	"Estimated Amount", "Advance Paid", "Status", "Created At", "Completed At",
}

// SpreadsheetExporter writes job listings as a single-sheet workbook.
type SpreadsheetExporter struct{}

var _ interfaces.ISpreadsheetExporter = (*SpreadsheetExporter)(nil)

func NewSpreadsheetExporter() *SpreadsheetExporter {
	return &SpreadsheetExporter{}
}

func (e *SpreadsheetExporter) Jobs(jobs []entities.Job) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", jobsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(jobsSheet, "A1", &jobsHeader); err != nil {
		return nil, err
	}

	for i, j := range jobs {
		completed := ""
		if j.CompletedAt != nil {
			completed = j.CompletedAt.UTC().Format(cellLayout)
		}
		row := []any{
			j.ID, j.CustomerName, j.Phone, j.VehicleNumber, j.CarModel, j.WorkDescription,
			j.EstimatedAmount, j.AdvancePaid, string(j.Status), j.CreatedAt.UTC().Format(cellLayout), completed,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(jobsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
