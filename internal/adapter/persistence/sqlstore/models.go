package sqlstore

import (
	"time"

	"workshop_jobs/internal/domain/entities"
)

type userModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	Phone        string    `gorm:"column:phone"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime:false"`
}

func (userModel) TableName() string { return "users" }

type workshopModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OwnerID   string    `gorm:"column:owner_id;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	Address   string    `gorm:"column:address"`
	Phone     string    `gorm:"column:phone"`
	GSTNumber string    `gorm:"column:gst_number"`
	Currency  string    `gorm:"column:currency"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime:false"`
}

func (workshopModel) TableName() string { return "workshops" }

type inviteCodeModel struct {
	ID         string     `gorm:"column:id;primaryKey"`
	Code       string     `gorm:"column:code;uniqueIndex"`
	WorkshopID string     `gorm:"column:workshop_id;index"`
	CreatedBy  string     `gorm:"column:created_by"`
	Active     bool       `gorm:"column:is_active"`
	UsedBy     *string    `gorm:"column:used_by"`
	UsedAt     *time.Time `gorm:"column:used_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime:false"`
}

func (inviteCodeModel) TableName() string { return "invite_codes" }

type managerModel struct {
	ID          string          `gorm:"column:id;primaryKey"`
	UserID      string          `gorm:"column:user_id;index"`
	WorkshopID  string          `gorm:"column:workshop_id;index"`
	JoinedAt    time.Time       `gorm:"column:joined_at"`
	Active      bool            `gorm:"column:is_active"`
	Permissions map[string]bool `gorm:"column:permissions;serializer:json"`
}

func (managerModel) TableName() string { return "managers" }

type jobModel struct {
	ID                    string     `gorm:"column:id;primaryKey"`
	WorkshopID            string     `gorm:"column:workshop_id;index"`
	ManagerID             string     `gorm:"column:manager_id;index"`
	CustomerName          string     `gorm:"column:customer_name"`
	Phone                 string     `gorm:"column:phone"`
	Address               string     `gorm:"column:address"`
	CarModel              string     `gorm:"column:car_model"`
	VehicleNumber         string     `gorm:"column:vehicle_number"`
	WorkDescription       string     `gorm:"column:work_description"`
	EstimatedAmount       float64    `gorm:"column:estimated_amount"`
	AdvancePaid           float64    `gorm:"column:advance_paid"`
	PlannedCompletionDays int        `gorm:"column:planned_completion_days"`
	PartsRequired         string     `gorm:"column:parts_required"`
	WorkerAssigned        string     `gorm:"column:worker_assigned"`
	InternalNotes         string     `gorm:"column:internal_notes"`
	Status                string     `gorm:"column:status;index"`
	CreatedAt             time.Time  `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt             time.Time  `gorm:"column:updated_at;autoUpdateTime:false"`
	CompletedAt           *time.Time `gorm:"column:completed_at"`
}

func (jobModel) TableName() string { return "jobs" }

type jobUpdateModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	JobID       string    `gorm:"column:job_id;index"`
	UpdatedBy   string    `gorm:"column:updated_by"`
	UpdateType  string    `gorm:"column:update_type"`
	Description string    `gorm:"column:description"`
	Timestamp   time.Time `gorm:"column:timestamp"`
}

func (jobUpdateModel) TableName() string { return "job_updates" }

type paymentModel struct {
	ID               string     `gorm:"column:id;primaryKey"`
	JobID            string     `gorm:"column:job_id;index"`
	Amount           float64    `gorm:"column:amount"`
	PaymentType      string     `gorm:"column:payment_type"`
	Notes            string     `gorm:"column:notes"`
	CollectedBy      string     `gorm:"column:collected_by;index"`
	ConfirmedByOwner bool       `gorm:"column:confirmed_by_owner"`
	PaymentDate      time.Time  `gorm:"column:payment_date"`
	ConfirmationDate *time.Time `gorm:"column:confirmation_date"`
}

func (paymentModel) TableName() string { return "payments" }

type settlementModel struct {
	ID               string     `gorm:"column:id;primaryKey"`
	ManagerID        string     `gorm:"column:manager_id;index"`
	WorkshopID       string     `gorm:"column:workshop_id;index"`
	Amount           float64    `gorm:"column:amount"`
	JobIDs           []string   `gorm:"column:job_ids;serializer:json"`
	Notes            string     `gorm:"column:notes"`
	SubmittedDate    time.Time  `gorm:"column:submitted_date"`
	ConfirmedByOwner bool       `gorm:"column:confirmed_by_owner"`
	ConfirmationDate *time.Time `gorm:"column:confirmation_date"`
}

func (settlementModel) TableName() string { return "settlements" }

func models() []any {
	return []any{
		&userModel{},
		&workshopModel{},
		&inviteCodeModel{},
		&managerModel{},
		&jobModel{},
		&jobUpdateModel{},
		&paymentModel{},
		&settlementModel{},
	}
}

func toUserModel(u entities.User) userModel {
	return userModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

func toDomainUser(m userModel) entities.User {
	return entities.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Phone:        m.Phone,
		Role:         entities.Role(m.Role),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func toWorkshopModel(w entities.Workshop) workshopModel {
	return workshopModel{
		ID:        w.ID,
		OwnerID:   w.OwnerID,
		Name:      w.Name,
		Address:   w.Address,
		Phone:     w.Phone,
		GSTNumber: w.GSTNumber,
		Currency:  w.Currency,
		CreatedAt: w.CreatedAt.UTC(),
	}
}

func toDomainWorkshop(m workshopModel) entities.Workshop {
	return entities.Workshop{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Address:   m.Address,
		Phone:     m.Phone,
		GSTNumber: m.GSTNumber,
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func toInviteCodeModel(c entities.InviteCode) inviteCodeModel {
	var usedBy *string
	if c.UsedBy != "" {
		v := c.UsedBy
		usedBy = &v
	}
	return inviteCodeModel{
		ID:         c.ID,
		Code:       c.Code,
		WorkshopID: c.WorkshopID,
		CreatedBy:  c.CreatedBy,
		Active:     c.Active,
		UsedBy:     usedBy,
		UsedAt:     utcPtr(c.UsedAt),
		CreatedAt:  c.CreatedAt.UTC(),
	}
}

func toDomainInviteCode(m inviteCodeModel) entities.InviteCode {
	var usedBy string
	if m.UsedBy != nil {
		usedBy = *m.UsedBy
	}
	return entities.InviteCode{
		ID:         m.ID,
		Code:       m.Code,
		WorkshopID: m.WorkshopID,
		CreatedBy:  m.CreatedBy,
		Active:     m.Active,
		UsedBy:     usedBy,
		UsedAt:     utcPtr(m.UsedAt),
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

func toManagerModel(b entities.ManagerBinding) managerModel {
	return managerModel{
		ID:          b.ID,
		UserID:      b.UserID,
		WorkshopID:  b.WorkshopID,
		JoinedAt:    b.JoinedAt.UTC(),
		Active:      b.Active,
		Permissions: b.Permissions,
	}
}

func toDomainManager(m managerModel) entities.ManagerBinding {
	perms := m.Permissions
	if perms == nil {
		perms = map[string]bool{}
	}
	return entities.ManagerBinding{
		ID:          m.ID,
		UserID:      m.UserID,
		WorkshopID:  m.WorkshopID,
		JoinedAt:    m.JoinedAt.UTC(),
		Active:      m.Active,
		Permissions: perms,
	}
}

func toJobModel(j entities.Job) jobModel {
	return jobModel{
		ID:                    j.ID,
		WorkshopID:            j.WorkshopID,
		ManagerID:             j.ManagerID,
		CustomerName:          j.CustomerName,
		Phone:                 j.Phone,
		Address:               j.Address,
		CarModel:              j.CarModel,
		VehicleNumber:         j.VehicleNumber,
		WorkDescription:       j.WorkDescription,
		EstimatedAmount:       j.EstimatedAmount,
		AdvancePaid:           j.AdvancePaid,
		PlannedCompletionDays: j.PlannedCompletionDays,
		PartsRequired:         j.PartsRequired,
		WorkerAssigned:        j.WorkerAssigned,
		InternalNotes:         j.InternalNotes,
		Status:                string(j.Status),
		CreatedAt:             j.CreatedAt.UTC(),
		UpdatedAt:             j.UpdatedAt.UTC(),
		CompletedAt:           utcPtr(j.CompletedAt),
	}
}

func toDomainJob(m jobModel) entities.Job {
	return entities.Job{
		ID:                    m.ID,
		WorkshopID:            m.WorkshopID,
		ManagerID:             m.ManagerID,
		CustomerName:          m.CustomerName,
		Phone:                 m.Phone,
		Address:               m.Address,
		CarModel:              m.CarModel,
		VehicleNumber:         m.VehicleNumber,
		WorkDescription:       m.WorkDescription,
		EstimatedAmount:       m.EstimatedAmount,
		AdvancePaid:           m.AdvancePaid,
		PlannedCompletionDays: m.PlannedCompletionDays,
		PartsRequired:         m.PartsRequired,
		WorkerAssigned:        m.WorkerAssigned,
		InternalNotes:         m.InternalNotes,
		Status:                entities.JobStatus(m.Status),
		CreatedAt:             m.CreatedAt.UTC(),
		UpdatedAt:             m.UpdatedAt.UTC(),
		CompletedAt:           utcPtr(m.CompletedAt),
	}
}

func toJobUpdateModel(u entities.JobUpdate) jobUpdateModel {
	return jobUpdateModel{
		ID:          u.ID,
		JobID:       u.JobID,
		UpdatedBy:   u.UpdatedBy,
		UpdateType:  string(u.UpdateType),
		Description: u.Description,
		Timestamp:   u.Timestamp.UTC(),
	}
}

func toDomainJobUpdate(m jobUpdateModel) entities.JobUpdate {
	return entities.JobUpdate{
		ID:          m.ID,
		JobID:       m.JobID,
		UpdatedBy:   m.UpdatedBy,
		UpdateType:  entities.JobUpdateType(m.UpdateType),
		Description: m.Description,
		Timestamp:   m.Timestamp.UTC(),
	}
}

func toPaymentModel(p entities.Payment) paymentModel {
	return paymentModel{
		ID:               p.ID,
		JobID:            p.JobID,
		Amount:           p.Amount,
		PaymentType:      p.PaymentType,
		Notes:            p.Notes,
		CollectedBy:      p.CollectedByManagerID,
		ConfirmedByOwner: p.ConfirmedByOwner,
		PaymentDate:      p.PaymentDate.UTC(),
		ConfirmationDate: utcPtr(p.ConfirmationDate),
	}
}

func toDomainPayment(m paymentModel) entities.Payment {
	return entities.Payment{
		ID:                   m.ID,
		JobID:                m.JobID,
		Amount:               m.Amount,
		PaymentType:          m.PaymentType,
		Notes:                m.Notes,
		CollectedByManagerID: m.CollectedBy,
		ConfirmedByOwner:     m.ConfirmedByOwner,
		PaymentDate:          m.PaymentDate.UTC(),
		ConfirmationDate:     utcPtr(m.ConfirmationDate),
	}
}

func toSettlementModel(s entities.Settlement) settlementModel {
	return settlementModel{
		ID:               s.ID,
		ManagerID:        s.ManagerID,
		WorkshopID:       s.WorkshopID,
		Amount:           s.Amount,
		JobIDs:           s.JobIDs,
		Notes:            s.Notes,
		SubmittedDate:    s.SubmittedDate.UTC(),
		ConfirmedByOwner: s.ConfirmedByOwner,
		ConfirmationDate: utcPtr(s.ConfirmationDate),
	}
}

func toDomainSettlement(m settlementModel) entities.Settlement {
	jobIDs := m.JobIDs
	if jobIDs == nil {
		jobIDs = []string{}
	}
	return entities.Settlement{
		ID:               m.ID,
		ManagerID:        m.ManagerID,
		WorkshopID:       m.WorkshopID,
		Amount:           m.Amount,
		JobIDs:           jobIDs,
		Notes:            m.Notes,
		SubmittedDate:    m.SubmittedDate.UTC(),
		ConfirmedByOwner: m.ConfirmedByOwner,
		ConfirmationDate: utcPtr(m.ConfirmationDate),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
