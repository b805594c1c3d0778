package request

import "workshop_jobs/internal/usecase"

type WorkshopRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone" binding:"required"`
	GSTNumber string `json:"gst_number"`
	Currency  string `json:"currency" binding:"omitempty,len=3,alpha"`
}

func (r WorkshopRequest) ToInput() usecase.WorkshopInput {
	return usecase.WorkshopInput{
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		GSTNumber: r.GSTNumber,
		Currency:  r.Currency,
	}
}

// WorkshopPatchRequest changes only the fields present in the body.
type WorkshopPatchRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	GSTNumber *string `json:"gst_number"`
	Currency  *string `json:"currency" binding:"omitempty,len=3,alpha"`
}

func (r WorkshopPatchRequest) ToPatch() usecase.WorkshopPatch {
	return usecase.WorkshopPatch{
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		GSTNumber: r.GSTNumber,
		Currency:  r.Currency,
	}
}
