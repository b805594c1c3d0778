package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type JobInput struct {
	CustomerName          string
	Phone                 string
	Address               string
	CarModel              string
	VehicleNumber         string
	WorkDescription       string
	EstimatedAmount       float64
	AdvancePaid           float64
	PlannedCompletionDays int
	PartsRequired         string
	WorkerAssigned        string
	InternalNotes         string
}

// JobPatch carries the fields to change. Nil fields are left alone.
type JobPatch struct {
	CustomerName          *string
	Phone                 *string
	Address               *string
	CarModel              *string
	VehicleNumber         *string
	WorkDescription       *string
	EstimatedAmount       *float64
	AdvancePaid           *float64
	PlannedCompletionDays *int
	PartsRequired         *string
	WorkerAssigned        *string
	InternalNotes         *string
	Status                *string
}

type JobListFilter struct {
	Status    string
	ManagerID string
}

// IJobUseCase exposes the job ledger.
type IJobUseCase interface {
	Create(ctx context.Context, caller entities.User, in JobInput) (entities.Job, error)
	List(ctx context.Context, caller entities.User, f JobListFilter) ([]entities.JobSummary, error)
	Get(ctx context.Context, caller entities.User, jobID string) (entities.JobDetail, error)
	Update(ctx context.Context, caller entities.User, jobID string, patch JobPatch) (entities.Job, error)
}

type JobUseCase struct {
	jobs     interfaces.IJobRepository
	payments interfaces.IPaymentRepository
	users    interfaces.IUserRepository
	scopes   *ScopeResolver
	policy   entities.StatusPolicy
	log      logrus.FieldLogger
	now      func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	payments interfaces.IPaymentRepository,
	users interfaces.IUserRepository,
	scopes *ScopeResolver,
	policy entities.StatusPolicy,
	log logrus.FieldLogger,
) *JobUseCase {
	if policy == "" {
		policy = entities.StatusPolicyPermissive
	}
	return &JobUseCase{
		jobs:     jobs,
		payments: payments,
		users:    users,
		scopes:   scopes,
		policy:   policy,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (in JobInput) validate() error {
	for _, v := range []string{in.CustomerName, in.Phone, in.CarModel, in.VehicleNumber, in.WorkDescription} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	if in.EstimatedAmount < 0 || in.AdvancePaid < 0 || in.PlannedCompletionDays < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (u *JobUseCase) Create(ctx context.Context, caller entities.User, in JobInput) (entities.Job, error) {
	scope, err := u.scopes.ManagerBinding(ctx, caller)
	if err != nil {
		return entities.Job{}, err
	}
	if err := in.validate(); err != nil {
		return entities.Job{}, err
	}

	now := u.now()
	job := entities.Job{
		ID:                    uuid.NewString(),
		WorkshopID:            scope.Binding.WorkshopID,
		ManagerID:             caller.ID,
		CustomerName:          strings.TrimSpace(in.CustomerName),
		Phone:                 strings.TrimSpace(in.Phone),
		Address:               strings.TrimSpace(in.Address),
		CarModel:              strings.TrimSpace(in.CarModel),
		VehicleNumber:         strings.TrimSpace(in.VehicleNumber),
		WorkDescription:       strings.TrimSpace(in.WorkDescription),
		EstimatedAmount:       in.EstimatedAmount,
		AdvancePaid:           in.AdvancePaid,
		PlannedCompletionDays: in.PlannedCompletionDays,
		PartsRequired:         strings.TrimSpace(in.PartsRequired),
		WorkerAssigned:        strings.TrimSpace(in.WorkerAssigned),
		InternalNotes:         strings.TrimSpace(in.InternalNotes),
		Status:                entities.JobStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	created := entities.JobUpdate{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		UpdatedBy:   caller.ID,
		UpdateType:  entities.JobUpdateCreated,
		Description: "Job created",
		Timestamp:   now,
	}

	job, err = u.jobs.Create(ctx, job, created)
	if err != nil {
		return entities.Job{}, err
	}

	u.log.WithFields(logrus.Fields{"job_id": job.ID, "workshop_id": job.WorkshopID, "manager_id": caller.ID}).Info("[job][usecase] job created")
	return job, nil
}

// List returns an empty result when the caller has no workshop to list.
func (u *JobUseCase) List(ctx context.Context, caller entities.User, f JobListFilter) ([]entities.JobSummary, error) {
	filter := entities.JobFilter{}
	if v := strings.TrimSpace(f.Status); v != "" {
		status, ok := entities.ParseJobStatus(v)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter.Status = status
	}

	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case entities.RoleManager:
		if scope.Binding == nil {
			return []entities.JobSummary{}, nil
		}
		filter.WorkshopID = scope.Binding.WorkshopID
		filter.ManagerID = caller.ID
	case entities.RoleOwner:
		if !scope.HasWorkshop() {
			return []entities.JobSummary{}, nil
		}
		filter.WorkshopID = scope.WorkshopID()
		filter.ManagerID = strings.TrimSpace(f.ManagerID)
	default:
		return nil, ErrAccessDenied
	}

	jobs, err := u.jobs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return u.summarize(ctx, jobs)
}

func (u *JobUseCase) summarize(ctx context.Context, jobs []entities.Job) ([]entities.JobSummary, error) {
	out := make([]entities.JobSummary, 0, len(jobs))
	if len(jobs) == 0 {
		return out, nil
	}

	jobIDs := make([]string, 0, len(jobs))
	managerIDs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
		managerIDs = append(managerIDs, j.ManagerID)
	}

	payments, err := u.payments.List(ctx, entities.PaymentFilter{JobIDs: jobIDs})
	if err != nil {
		return nil, err
	}
	byJob := map[string][]entities.Payment{}
	for _, p := range payments {
		byJob[p.JobID] = append(byJob[p.JobID], p)
	}

	names, err := userNames(ctx, u.users, managerIDs)
	if err != nil {
		return nil, err
	}

	for _, j := range jobs {
		out = append(out, entities.Summarize(j, names[j.ManagerID], byJob[j.ID]))
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

// Get applies the read rule: managers see what they authored, owners see
// their workshop's jobs. A visible job that is not the caller's is
// reported as forbidden.
func (u *JobUseCase) Get(ctx context.Context, caller entities.User, jobID string) (entities.JobDetail, error) {
	job, scope, err := u.load(ctx, caller, jobID)
	if err != nil {
		return entities.JobDetail{}, err
	}
	if !scope.CanSeeJob(job) {
		return entities.JobDetail{}, ErrAccessDenied
	}

	payments, err := u.payments.List(ctx, entities.PaymentFilter{JobID: job.ID})
	if err != nil {
		return entities.JobDetail{}, err
	}
	updates, err := u.jobs.ListUpdates(ctx, job.ID)
	if err != nil {
		return entities.JobDetail{}, err
	}
	names, err := userNames(ctx, u.users, []string{job.ManagerID})
	if err != nil {
		return entities.JobDetail{}, err
	}

	if payments == nil {
		payments = []entities.Payment{}
	}
	if updates == nil {
		updates = []entities.JobUpdate{}
	}
	sort.SliceStable(payments, func(a, b int) bool { return payments[a].PaymentDate.After(payments[b].PaymentDate) })
	sort.SliceStable(updates, func(a, b int) bool { return updates[a].Timestamp.After(updates[b].Timestamp) })

	return entities.JobDetail{
		JobSummary: entities.Summarize(job, names[job.ManagerID], payments),
		Payments:   payments,
		Updates:    updates,
	}, nil
}

func (u *JobUseCase) load(ctx context.Context, caller entities.User, jobID string) (entities.Job, entities.Scope, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, entities.Scope{}, ErrJobNotFound
	}
	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return entities.Job{}, entities.Scope{}, err
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, entities.Scope{}, err
	}
	if job.ID == "" {
		return entities.Job{}, entities.Scope{}, ErrJobNotFound
	}
	return job, scope, nil
}

// Update applies the supplied fields and records one audit entry naming the
// keys that changed. A patch that changes nothing writes nothing.
func (u *JobUseCase) Update(ctx context.Context, caller entities.User, jobID string, patch JobPatch) (entities.Job, error) {
	job, scope, err := u.load(ctx, caller, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !scope.CanSeeJob(job) {
		return entities.Job{}, ErrJobNotFound
	}

	changed, err := u.apply(&job, patch)
	if err != nil {
		return entities.Job{}, err
	}
	if len(changed) == 0 {
		return job, nil
	}

	now := u.now()
	if job.Status.StampsCompletion() && job.CompletedAt == nil {
		job.CompletedAt = &now
	}
	job.UpdatedAt = now

	modified := entities.JobUpdate{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		UpdatedBy:   caller.ID,
		UpdateType:  entities.JobUpdateModified,
		Description: "Job updated: " + strings.Join(changed, ", "),
		Timestamp:   now,
	}

	job, err = u.jobs.Update(ctx, job, changed, modified)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Job{}, ErrJobNotFound
	}
	if err != nil {
		return entities.Job{}, err
	}

	u.log.WithFields(logrus.Fields{"job_id": job.ID, "fields": changed, "status": job.Status}).Info("[job][usecase] job updated")
	return job, nil
}

func (u *JobUseCase) apply(job *entities.Job, patch JobPatch) ([]string, error) {
	var changed []string

	text := func(key string, dst *string, src *string, required bool) error {
		if src == nil {
			return nil
		}
		v := strings.TrimSpace(*src)
		if required && v == "" {
			return ErrMissingFields
		}
		if *dst != v {
			*dst = v
			changed = append(changed, key)
		}
		return nil
	}
	amount := func(key string, dst *float64, src *float64) error {
		if src == nil {
			return nil
		}
		if *src < 0 {
			return ErrInvalidAmount
		}
		if *dst != *src {
			*dst = *src
			changed = append(changed, key)
		}
		return nil
	}

	steps := []func() error{
		func() error { return text("customer_name", &job.CustomerName, patch.CustomerName, true) },
		func() error { return text("phone", &job.Phone, patch.Phone, true) },
		func() error { return text("address", &job.Address, patch.Address, false) },
		func() error { return text("car_model", &job.CarModel, patch.CarModel, true) },
		func() error { return text("vehicle_number", &job.VehicleNumber, patch.VehicleNumber, true) },
		func() error { return text("work_description", &job.WorkDescription, patch.WorkDescription, true) },
		func() error { return amount("estimated_amount", &job.EstimatedAmount, patch.EstimatedAmount) },
		func() error { return amount("advance_paid", &job.AdvancePaid, patch.AdvancePaid) },
		func() error {
			if patch.PlannedCompletionDays == nil {
				return nil
			}
			if *patch.PlannedCompletionDays < 0 {
				return ErrInvalidAmount
			}
			if job.PlannedCompletionDays != *patch.PlannedCompletionDays {
				job.PlannedCompletionDays = *patch.PlannedCompletionDays
				changed = append(changed, "planned_completion_days")
			}
			return nil
		},
		func() error { return text("parts_required", &job.PartsRequired, patch.PartsRequired, false) },
		func() error { return text("worker_assigned", &job.WorkerAssigned, patch.WorkerAssigned, false) },
		func() error { return text("internal_notes", &job.InternalNotes, patch.InternalNotes, false) },
		func() error {
			if patch.Status == nil {
				return nil
			}
			status, ok := entities.ParseJobStatus(*patch.Status)
			if !ok {
				return ErrInvalidStatus
			}
			if !u.policy.Allows(job.Status, status) {
				return ErrStatusTransition
			}
			if job.Status != status {
				job.Status = status
				changed = append(changed, "status")
			}
			return nil
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return changed, nil
}
