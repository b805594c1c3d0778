package sqlstore

import (
	"context"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentStore struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentStore)(nil)

func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) Create(ctx context.Context, p entities.Payment, audit entities.JobUpdate) (entities.Payment, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toPaymentModel(p)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		u := toJobUpdateModel(audit)
		return tx.Create(&u).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return entities.Payment{}, interfaces.ErrDuplicateKey
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (s *PaymentStore) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var m paymentModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isNotFound(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return toDomainPayment(m), nil
}

func (s *PaymentStore) List(ctx context.Context, f entities.PaymentFilter) ([]entities.Payment, error) {
	if f.JobID == "" && f.CollectedBy == "" && f.JobIDs == nil {
		return nil, interfaces.ErrUnboundedQuery
	}
	if f.JobIDs != nil && len(f.JobIDs) == 0 {
		return []entities.Payment{}, nil
	}

	q := s.db.WithContext(ctx).Model(&paymentModel{})
	if f.JobID != "" {
		q = q.Where("job_id = ?", f.JobID)
	}
	if f.JobIDs != nil {
		q = q.Where("job_id IN ?", f.JobIDs)
	}
	if f.CollectedBy != "" {
		q = q.Where("collected_by = ?", f.CollectedBy)
	}
	if f.Confirmed != nil {
		q = q.Where("confirmed_by_owner = ?", *f.Confirmed)
	}

	var rows []paymentModel
	if err := q.Order("payment_date desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		payments = append(payments, toDomainPayment(m))
	}
	return payments, nil
}

func (s *PaymentStore) Confirm(ctx context.Context, id string, at time.Time) (entities.Payment, error) {
	res := s.db.WithContext(ctx).Model(&paymentModel{}).Where("id = ?", id).Updates(map[string]any{
		"confirmed_by_owner": true,
		"confirmation_date":  at.UTC(),
	})
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, interfaces.ErrNotFound
	}
	return s.GetByID(ctx, id)
}
