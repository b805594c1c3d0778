package sqlstore

import (
	"context"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type InviteCodeStore struct {
	db *gorm.DB
}

var _ interfaces.IInviteCodeRepository = (*InviteCodeStore)(nil)

func NewInviteCodeStore(db *gorm.DB) *InviteCodeStore {
	return &InviteCodeStore{db: db}
}

func (s *InviteCodeStore) Create(ctx context.Context, c entities.InviteCode) (entities.InviteCode, error) {
	m := toInviteCodeModel(c)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return entities.InviteCode{}, interfaces.ErrDuplicateKey
		}
		return entities.InviteCode{}, err
	}
	return c, nil
}

func (s *InviteCodeStore) GetByCode(ctx context.Context, code string) (entities.InviteCode, error) {
	var m inviteCodeModel
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if isNotFound(err) {
			return entities.InviteCode{}, nil
		}
		return entities.InviteCode{}, err
	}
	return toDomainInviteCode(m), nil
}

func (s *InviteCodeStore) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.InviteCode, error) {
	var rows []inviteCodeModel
	if err := s.db.WithContext(ctx).Where("workshop_id = ?", workshopID).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	codes := make([]entities.InviteCode, 0, len(rows))
	for _, m := range rows {
		codes = append(codes, toDomainInviteCode(m))
	}
	return codes, nil
}

func (s *InviteCodeStore) Deactivate(ctx context.Context, workshopID, code string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&inviteCodeModel{}).
		Where("workshop_id = ? AND code = ? AND is_active = ? AND used_by IS NULL", workshopID, code, true).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
