package usecase

import (
	"context"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"
)

const pdfContentType = "application/pdf"

// Document is a rendered file ready to be streamed back.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// IDocumentUseCase renders printable job documents. Access follows the job
// read rule.
type IDocumentUseCase interface {
	JobCard(ctx context.Context, caller entities.User, jobID string) (Document, error)
	Invoice(ctx context.Context, caller entities.User, jobID string) (Document, error)
}

type DocumentUseCase struct {
	jobs      IJobUseCase
	workshops interfaces.IWorkshopRepository
	renderer  interfaces.IDocumentRenderer
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(jobs IJobUseCase, workshops interfaces.IWorkshopRepository, renderer interfaces.IDocumentRenderer) *DocumentUseCase {
	return &DocumentUseCase{jobs: jobs, workshops: workshops, renderer: renderer}
}

func (u *DocumentUseCase) load(ctx context.Context, caller entities.User, jobID string) (entities.Workshop, entities.JobDetail, error) {
	detail, err := u.jobs.Get(ctx, caller, jobID)
	if err != nil {
		return entities.Workshop{}, entities.JobDetail{}, err
	}
	w, err := u.workshops.GetByID(ctx, detail.WorkshopID)
	if err != nil {
		return entities.Workshop{}, entities.JobDetail{}, err
	}
	if w.ID == "" {
		return entities.Workshop{}, entities.JobDetail{}, ErrWorkshopNotFound
	}
	return w, detail, nil
}

func (u *DocumentUseCase) JobCard(ctx context.Context, caller entities.User, jobID string) (Document, error) {
	w, detail, err := u.load(ctx, caller, jobID)
	if err != nil {
		return Document{}, err
	}
	body, err := u.renderer.JobCard(w, detail)
	if err != nil {
		return Document{}, err
	}
	return Document{Filename: "job_card_" + shortID(detail.ID) + ".pdf", ContentType: pdfContentType, Body: body}, nil
}

func (u *DocumentUseCase) Invoice(ctx context.Context, caller entities.User, jobID string) (Document, error) {
	w, detail, err := u.load(ctx, caller, jobID)
	if err != nil {
		return Document{}, err
	}
	body, err := u.renderer.Invoice(w, detail)
	if err != nil {
		return Document{}, err
	}
	return Document{Filename: "invoice_" + shortID(detail.ID) + ".pdf", ContentType: pdfContentType, Body: body}, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
