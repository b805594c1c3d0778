package documents

import (
	"bytes"
	"fmt"
	"strings"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const dateLayout = "02 Jan 2006"

// PDFRenderer lays out job cards and invoices on A4 pages.
type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

type page struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newPage(title string) *page {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	return &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (p *page) heading(text string, size float64) {
	p.pdf.SetFont("Helvetica", "B", size)
	p.pdf.CellFormat(0, size/2+2, p.tr(text), "", 1, "C", false, 0, "")
}

func (p *page) section(text string) {
	p.pdf.Ln(3)
	p.pdf.SetFont("Helvetica", "B", 11)
	p.pdf.SetFillColor(230, 230, 230)
	p.pdf.CellFormat(0, 7, p.tr(text), "", 1, "L", true, 0, "")
	p.pdf.Ln(1)
}

func (p *page) field(label, value string) {
	if value == "" {
		value = "-"
	}
	p.pdf.SetFont("Helvetica", "B", 10)
	p.pdf.CellFormat(50, 6, p.tr(label), "", 0, "L", false, 0, "")
	p.pdf.SetFont("Helvetica", "", 10)
	p.pdf.MultiCell(0, 6, p.tr(value), "", "L", false)
}

func (p *page) text(value string) {
	p.pdf.SetFont("Helvetica", "", 10)
	p.pdf.MultiCell(0, 6, p.tr(value), "", "L", false)
}

func (p *page) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(currency string, v float64) string {
	return currency + " " + decimal.NewFromFloat(v).StringFixed(2)
}

func (r *PDFRenderer) JobCard(w entities.Workshop, job entities.JobDetail) ([]byte, error) {
	cur := w.CurrencyOrDefault()
	p := newPage("Job Card " + job.ID)

	p.heading(w.Name, 18)
	if w.Phone != "" {
		p.heading("Phone: "+w.Phone, 10)
	}
	p.pdf.Ln(2)
	p.heading("JOB CARD", 14)

	p.section("Job")
	p.field("Job ID", job.ID)
	p.field("Date", job.CreatedAt.Format(dateLayout))
	p.field("Status", strings.ReplaceAll(string(job.Status), "_", " "))
	p.field("Planned completion", fmt.Sprintf("%d days", job.PlannedCompletionDays))
	if job.ManagerName != "" {
		p.field("Manager", job.ManagerName)
	}

	p.section("Customer")
	p.field("Name", job.CustomerName)
	p.field("Phone", job.Phone)
	p.field("Address", job.Address)

	p.section("Vehicle")
	p.field("Vehicle number", job.VehicleNumber)
	p.field("Model", job.CarModel)

	p.section("Work")
	p.text(job.WorkDescription)
	p.field("Parts required", job.PartsRequired)
	p.field("Worker assigned", job.WorkerAssigned)

	p.section("Amounts")
	p.field("Estimated", money(cur, job.EstimatedAmount))
	p.field("Advance paid", money(cur, job.AdvancePaid))
	p.field("Total paid", money(cur, job.TotalPaid))
	p.field("Remaining", money(cur, job.RemainingAmount))

	return p.bytes()
}

func (r *PDFRenderer) Invoice(w entities.Workshop, job entities.JobDetail) ([]byte, error) {
	cur := w.CurrencyOrDefault()
	p := newPage("Invoice " + job.ID)

	p.heading(w.Name, 18)
	if w.Address != "" {
		p.heading(w.Address, 10)
	}
	if w.Phone != "" {
		p.heading("Phone: "+w.Phone, 10)
	}
	if w.GSTNumber != "" {
		p.heading("GST: "+w.GSTNumber, 10)
	}
	p.pdf.Ln(2)
	p.heading("INVOICE", 14)
	p.field("Invoice no.", "INV-"+strings.ToUpper(shortRef(job.ID)))
	p.field("Date", job.UpdatedAt.Format(dateLayout))

	p.section("Bill to")
	p.field("Name", job.CustomerName)
	p.field("Phone", job.Phone)
	p.field("Address", job.Address)

	p.section("Service details")
	p.pdf.SetFont("Helvetica", "B", 10)
	p.pdf.CellFormat(110, 7, p.tr("Description"), "1", 0, "L", false, 0, "")
	p.pdf.CellFormat(35, 7, p.tr("Vehicle"), "1", 0, "L", false, 0, "")
	p.pdf.CellFormat(0, 7, p.tr("Amount"), "1", 1, "R", false, 0, "")
	p.pdf.SetFont("Helvetica", "", 10)
	p.pdf.CellFormat(110, 7, p.tr(truncate(job.WorkDescription, 60)), "1", 0, "L", false, 0, "")
	p.pdf.CellFormat(35, 7, p.tr(job.VehicleNumber), "1", 0, "L", false, 0, "")
	p.pdf.CellFormat(0, 7, p.tr(money(cur, job.EstimatedAmount)), "1", 1, "R", false, 0, "")

	if len(job.Payments) > 0 {
		p.section("Payments")
		for _, pay := range job.Payments {
			p.field(pay.PaymentDate.Format(dateLayout), fmt.Sprintf("%s (%s)", money(cur, pay.Amount), pay.PaymentType))
		}
	}

	p.section("Summary")
	p.field("Total", money(cur, job.EstimatedAmount))
	p.field("Paid", money(cur, job.TotalPaid))
	p.field("Balance due", money(cur, job.RemainingAmount))

	return p.bytes()
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
