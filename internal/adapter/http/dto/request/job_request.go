package request

import "workshop_jobs/internal/usecase"

type JobRequest struct {
	CustomerName          string  `json:"customer_name" binding:"required"`
	Phone                 string  `json:"phone" binding:"required"`
	Address               string  `json:"address"`
	CarModel              string  `json:"car_model" binding:"required"`
	VehicleNumber         string  `json:"vehicle_number" binding:"required"`
	WorkDescription       string  `json:"work_description" binding:"required"`
	EstimatedAmount       float64 `json:"estimated_amount" binding:"gte=0"`
	AdvancePaid           float64 `json:"advance_paid" binding:"gte=0"`
	PlannedCompletionDays int     `json:"planned_completion_days" binding:"gte=0"`
	PartsRequired         string  `json:"parts_required"`
	WorkerAssigned        string  `json:"worker_assigned"`
	InternalNotes         string  `json:"internal_notes"`
}

func (r JobRequest) ToInput() usecase.JobInput {
	return usecase.JobInput{
		CustomerName:          r.CustomerName,
		Phone:                 r.Phone,
		Address:               r.Address,
		CarModel:              r.CarModel,
		VehicleNumber:         r.VehicleNumber,
		WorkDescription:       r.WorkDescription,
		EstimatedAmount:       r.EstimatedAmount,
		AdvancePaid:           r.AdvancePaid,
		PlannedCompletionDays: r.PlannedCompletionDays,
		PartsRequired:         r.PartsRequired,
		WorkerAssigned:        r.WorkerAssigned,
		InternalNotes:         r.InternalNotes,
	}
}

// JobPatchRequest changes only the fields present in the body.
type JobPatchRequest struct {
	CustomerName          *string  `json:"customer_name"`
	Phone                 *string  `json:"phone"`
	Address               *string  `json:"address"`
	CarModel              *string  `json:"car_model"`
	VehicleNumber         *string  `json:"vehicle_number"`
	WorkDescription       *string  `json:"work_description"`
	EstimatedAmount       *float64 `json:"estimated_amount" binding:"omitempty,gte=0"`
	AdvancePaid           *float64 `json:"advance_paid" binding:"omitempty,gte=0"`
	PlannedCompletionDays *int     `json:"planned_completion_days" binding:"omitempty,gte=0"`
	PartsRequired         *string  `json:"parts_required"`
	WorkerAssigned        *string  `json:"worker_assigned"`
	InternalNotes         *string  `json:"internal_notes"`
	Status                *string  `json:"status" binding:"omitempty,job_status"`
}

func (r JobPatchRequest) ToPatch() usecase.JobPatch {
	return usecase.JobPatch{
		CustomerName:          r.CustomerName,
		Phone:                 r.Phone,
		Address:               r.Address,
		CarModel:              r.CarModel,
		VehicleNumber:         r.VehicleNumber,
		WorkDescription:       r.WorkDescription,
		EstimatedAmount:       r.EstimatedAmount,
		AdvancePaid:           r.AdvancePaid,
		PlannedCompletionDays: r.PlannedCompletionDays,
		PartsRequired:         r.PartsRequired,
		WorkerAssigned:        r.WorkerAssigned,
		InternalNotes:         r.InternalNotes,
		Status:                r.Status,
	}
}

type JobListQuery struct {
	Status    string `form:"status" binding:"omitempty,job_status"`
	ManagerID string `form:"manager_id"`
}

func (q JobListQuery) ToFilter() usecase.JobListFilter {
	return usecase.JobListFilter{Status: q.Status, ManagerID: q.ManagerID}
}
