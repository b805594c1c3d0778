package sqlstore

import (
	"context"
	"fmt"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type JobStore struct {
	db *gorm.DB
}

var _ interfaces.IJobRepository = (*JobStore)(nil)

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) Create(ctx context.Context, j entities.Job, created entities.JobUpdate) (entities.Job, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toJobModel(j)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		u := toJobUpdateModel(created)
		return tx.Create(&u).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return entities.Job{}, interfaces.ErrDuplicateKey
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (s *JobStore) GetByID(ctx context.Context, id string) (entities.Job, error) {
	var m jobModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isNotFound(err) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	return toDomainJob(m), nil
}

func (s *JobStore) List(ctx context.Context, f entities.JobFilter) ([]entities.Job, error) {
	if f.WorkshopID == "" && f.ManagerID == "" {
		return nil, interfaces.ErrUnboundedQuery
	}

	q := s.db.WithContext(ctx).Model(&jobModel{})
	if f.WorkshopID != "" {
		q = q.Where("workshop_id = ?", f.WorkshopID)
	}
	if f.ManagerID != "" {
		q = q.Where("manager_id = ?", f.ManagerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}

	var rows []jobModel
	if err := q.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(rows))
	for _, m := range rows {
		jobs = append(jobs, toDomainJob(m))
	}
	return jobs, nil
}

func (s *JobStore) Update(ctx context.Context, j entities.Job, fields []string, modified entities.JobUpdate) (entities.Job, error) {
	m := toJobModel(j)
	columns := jobColumns(m)
	values := map[string]any{"updated_at": m.UpdatedAt}
	for _, f := range fields {
		v, ok := columns[f]
		if !ok {
			return entities.Job{}, fmt.Errorf("job field %q is not updatable", f)
		}
		values[f] = v
	}
	if m.CompletedAt != nil {
		values["completed_at"] = gorm.Expr("COALESCE(completed_at, ?)", *m.CompletedAt)
	}

	var stored jobModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobModel{}).Where("id = ?", j.ID).Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrNotFound
		}
		u := toJobUpdateModel(modified)
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", j.ID).First(&stored).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return entities.Job{}, interfaces.ErrDuplicateKey
		}
		return entities.Job{}, err
	}
	return toDomainJob(stored), nil
}

// jobColumns maps the patchable field keys to their column values.
func jobColumns(m jobModel) map[string]any {
	return map[string]any{
		"customer_name":           m.CustomerName,
		"phone":                   m.Phone,
		"address":                 m.Address,
		"car_model":               m.CarModel,
		"vehicle_number":          m.VehicleNumber,
		"work_description":        m.WorkDescription,
		"estimated_amount":        m.EstimatedAmount,
		"advance_paid":            m.AdvancePaid,
		"planned_completion_days": m.PlannedCompletionDays,
		"parts_required":          m.PartsRequired,
		"worker_assigned":         m.WorkerAssigned,
		"internal_notes":          m.InternalNotes,
		"status":                  m.Status,
	}
}

func (s *JobStore) ListUpdates(ctx context.Context, jobID string) ([]entities.JobUpdate, error) {
	var rows []jobUpdateModel
	if err := s.db.WithContext(ctx).Where("job_id = ?", jobID).Order("timestamp desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	updates := make([]entities.JobUpdate, 0, len(rows))
	for _, m := range rows {
		updates = append(updates, toDomainJobUpdate(m))
	}
	return updates, nil
}
