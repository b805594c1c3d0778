package sqlstore

import (
	"context"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type SettlementStore struct {
	db *gorm.DB
}

var _ interfaces.ISettlementRepository = (*SettlementStore)(nil)

func NewSettlementStore(db *gorm.DB) *SettlementStore {
	return &SettlementStore{db: db}
}

func (s *SettlementStore) Create(ctx context.Context, st entities.Settlement) (entities.Settlement, error) {
	m := toSettlementModel(st)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return entities.Settlement{}, interfaces.ErrDuplicateKey
		}
		return entities.Settlement{}, err
	}
	return st, nil
}

func (s *SettlementStore) GetByID(ctx context.Context, id string) (entities.Settlement, error) {
	var m settlementModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isNotFound(err) {
			return entities.Settlement{}, nil
		}
		return entities.Settlement{}, err
	}
	return toDomainSettlement(m), nil
}

func (s *SettlementStore) List(ctx context.Context, f entities.SettlementFilter) ([]entities.Settlement, error) {
	if f.WorkshopID == "" && f.ManagerID == "" {
		return nil, interfaces.ErrUnboundedQuery
	}

	q := s.db.WithContext(ctx).Model(&settlementModel{})
	if f.WorkshopID != "" {
		q = q.Where("workshop_id = ?", f.WorkshopID)
	}
	if f.ManagerID != "" {
		q = q.Where("manager_id = ?", f.ManagerID)
	}
	if f.Confirmed != nil {
		q = q.Where("confirmed_by_owner = ?", *f.Confirmed)
	}

	var rows []settlementModel
	if err := q.Order("submitted_date desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	list := make([]entities.Settlement, 0, len(rows))
	for _, m := range rows {
		list = append(list, toDomainSettlement(m))
	}
	return list, nil
}

func (s *SettlementStore) Confirm(ctx context.Context, id string, at time.Time) (entities.Settlement, error) {
	res := s.db.WithContext(ctx).Model(&settlementModel{}).Where("id = ?", id).Updates(map[string]any{
		"confirmed_by_owner": true,
		"confirmation_date":  at.UTC(),
	})
	if res.Error != nil {
		return entities.Settlement{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Settlement{}, interfaces.ErrNotFound
	}
	return s.GetByID(ctx, id)
}
