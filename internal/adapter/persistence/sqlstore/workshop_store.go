package sqlstore

import (
	"context"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type WorkshopStore struct {
	db *gorm.DB
}

var _ interfaces.IWorkshopRepository = (*WorkshopStore)(nil)

func NewWorkshopStore(db *gorm.DB) *WorkshopStore {
	return &WorkshopStore{db: db}
}

func (s *WorkshopStore) Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	m := toWorkshopModel(w)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return entities.Workshop{}, interfaces.ErrDuplicateKey
		}
		return entities.Workshop{}, err
	}
	return w, nil
}

func (s *WorkshopStore) GetByID(ctx context.Context, id string) (entities.Workshop, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *WorkshopStore) GetByOwnerID(ctx context.Context, ownerID string) (entities.Workshop, error) {
	return s.first(ctx, "owner_id = ?", ownerID)
}

func (s *WorkshopStore) first(ctx context.Context, query string, arg string) (entities.Workshop, error) {
	var m workshopModel
	if err := s.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if isNotFound(err) {
			return entities.Workshop{}, nil
		}
		return entities.Workshop{}, err
	}
	return toDomainWorkshop(m), nil
}

func (s *WorkshopStore) Update(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	res := s.db.WithContext(ctx).Model(&workshopModel{}).Where("id = ?", w.ID).Updates(map[string]any{
		"name":       w.Name,
		"address":    w.Address,
		"phone":      w.Phone,
		"gst_number": w.GSTNumber,
		"currency":   w.Currency,
	})
	if res.Error != nil {
		return entities.Workshop{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Workshop{}, interfaces.ErrNotFound
	}
	return s.GetByID(ctx, w.ID)
}
