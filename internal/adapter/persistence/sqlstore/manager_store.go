package sqlstore

import (
	"context"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ManagerStore struct {
	db *gorm.DB
}

var _ interfaces.IManagerRepository = (*ManagerStore)(nil)

func NewManagerStore(db *gorm.DB) *ManagerStore {
	return &ManagerStore{db: db}
}

func (s *ManagerStore) GetActiveByUserID(ctx context.Context, userID string) (entities.ManagerBinding, error) {
	var m managerModel
	err := s.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true).First(&m).Error
	if err != nil {
		if isNotFound(err) {
			return entities.ManagerBinding{}, nil
		}
		return entities.ManagerBinding{}, err
	}
	return toDomainManager(m), nil
}

func (s *ManagerStore) ListActiveByWorkshopID(ctx context.Context, workshopID string) ([]entities.ManagerBinding, error) {
	var rows []managerModel
	err := s.db.WithContext(ctx).
		Where("workshop_id = ? AND is_active = ?", workshopID, true).
		Order("joined_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	bindings := make([]entities.ManagerBinding, 0, len(rows))
	for _, m := range rows {
		bindings = append(bindings, toDomainManager(m))
	}
	return bindings, nil
}

func (s *ManagerStore) Deactivate(ctx context.Context, workshopID, bindingID string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&managerModel{}).
		Where("id = ? AND workshop_id = ? AND is_active = ?", bindingID, workshopID, true).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
