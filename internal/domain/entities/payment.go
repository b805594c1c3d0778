package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money collected against a job. Confirmation is one-way.
type Payment struct {
	ID                   string     `json:"id"`
	JobID                string     `json:"job_id"`
	Amount               float64    `json:"amount"`
	PaymentType          string     `json:"payment_type"`
	Notes                string     `json:"notes,omitempty"`
	CollectedByManagerID string     `json:"collected_by_manager_id"`
	ConfirmedByOwner     bool       `json:"confirmed_by_owner"`
	PaymentDate          time.Time  `json:"payment_date"`
	ConfirmationDate     *time.Time `json:"confirmation_date"`
}

// PaymentFilter narrows payment listings. JobIDs, when non-nil, restricts
// results to those jobs; an empty non-nil slice matches nothing.
type PaymentFilter struct {
	JobID       string
	JobIDs      []string
	CollectedBy string
	Confirmed   *bool
}

// PaymentView is a payment enriched for listings.
type PaymentView struct {
	Payment
	Job         *PaymentJobRef `json:"job,omitempty"`
	ManagerName string         `json:"manager_name,omitempty"`
}

type PaymentJobRef struct {
	CustomerName  string `json:"customer_name"`
	VehicleNumber string `json:"vehicle_number"`
}

// TotalPaid sums every payment, confirmed or not.
func TotalPaid(payments []Payment) float64 {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(decimal.NewFromFloat(p.Amount))
	}
	return sum.InexactFloat64()
}

// RemainingAmount is estimated minus paid. It goes negative on overpayment.
func RemainingAmount(estimated, paid float64) float64 {
	return decimal.NewFromFloat(estimated).Sub(decimal.NewFromFloat(paid)).InexactFloat64()
}

// Summarize derives the payment totals of a job.
func Summarize(job Job, managerName string, payments []Payment) JobSummary {
	paid := TotalPaid(payments)
	return JobSummary{
		Job:             job,
		ManagerName:     managerName,
		TotalPaid:       paid,
		RemainingAmount: RemainingAmount(job.EstimatedAmount, paid),
	}
}

func (f PaymentFilter) Matches(p Payment) bool {
	if f.JobID != "" && p.JobID != f.JobID {
		return false
	}
	if f.JobIDs != nil && !containsString(f.JobIDs, p.JobID) {
		return false
	}
	if f.CollectedBy != "" && p.CollectedByManagerID != f.CollectedBy {
		return false
	}
	if f.Confirmed != nil && p.ConfirmedByOwner != *f.Confirmed {
		return false
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
