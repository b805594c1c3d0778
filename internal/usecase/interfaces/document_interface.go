package interfaces

import "workshop_jobs/internal/domain/entities"

//go:generate mockgen -source=document_interface.go -destination=mocks/document_interface.go -package=mock_interfaces

// IDocumentRenderer renders printable job documents as PDF.
type IDocumentRenderer interface {
	JobCard(w entities.Workshop, job entities.JobDetail) ([]byte, error)
	Invoice(w entities.Workshop, job entities.JobDetail) ([]byte, error)
}

// ISpreadsheetExporter renders job listings as an xlsx workbook.
type ISpreadsheetExporter interface {
	Jobs(jobs []entities.Job) ([]byte, error)
}
