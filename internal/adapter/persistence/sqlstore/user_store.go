package sqlstore

import (
	"context"
	"strings"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserStore)(nil)

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, u entities.User) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)
	m := toUserModel(u)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return u, nil
}

func (s *UserStore) CreateManager(ctx context.Context, u entities.User, code string, binding entities.ManagerBinding, usedAt time.Time) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&inviteCodeModel{}).
			Where("code = ? AND is_active = ? AND used_by IS NULL", code, true).
			Updates(map[string]any{"used_by": u.ID, "used_at": usedAt.UTC()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrInviteUnavailable
		}

		b := toManagerModel(binding)
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		m := toUserModel(u)
		return tx.Create(&m).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (entities.User, error) {
	var m userModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isNotFound(err) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	return toDomainUser(m), nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var m userModel
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&m).Error
	if err != nil {
		if isNotFound(err) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	return toDomainUser(m), nil
}

func (s *UserStore) ListByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	if len(ids) == 0 {
		return []entities.User{}, nil
	}
	var rows []userModel
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, toDomainUser(m))
	}
	return users, nil
}
