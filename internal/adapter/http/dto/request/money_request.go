package request

import "workshop_jobs/internal/usecase"

type PaymentRequest struct {
	JobID       string  `json:"job_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentType string  `json:"payment_type" binding:"required"`
	Notes       string  `json:"notes"`
}

func (r PaymentRequest) ToInput() usecase.PaymentInput {
	return usecase.PaymentInput{
		JobID:       r.JobID,
		Amount:      r.Amount,
		PaymentType: r.PaymentType,
		Notes:       r.Notes,
	}
}

type PaymentListQuery struct {
	JobID     string `form:"job_id"`
	Confirmed *bool  `form:"confirmed"`
}

func (q PaymentListQuery) ToFilter() usecase.PaymentListFilter {
	return usecase.PaymentListFilter{JobID: q.JobID, Confirmed: q.Confirmed}
}

type SettlementRequest struct {
	Amount float64  `json:"amount" binding:"required,gt=0"`
	JobIDs []string `json:"job_ids"`
	Notes  string   `json:"notes"`
}

func (r SettlementRequest) ToInput() usecase.SettlementInput {
	return usecase.SettlementInput{Amount: r.Amount, JobIDs: r.JobIDs, Notes: r.Notes}
}

type SettlementListQuery struct {
	Confirmed *bool `form:"confirmed"`
}
