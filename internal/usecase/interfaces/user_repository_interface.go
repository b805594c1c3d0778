package interfaces

import (
	"context"
	"time"
	"workshop_jobs/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/user_repository_interface.go -package=mock_interfaces

// IUserRepository persists accounts. Emails are stored lowercased and are
// unique.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	// CreateManager writes the account, consumes the invite code and creates
	// the binding as one unit. It fails with ErrInviteUnavailable when the
	// code was consumed or revoked concurrently.
	CreateManager(ctx context.Context, u entities.User, code string, binding entities.ManagerBinding, usedAt time.Time) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListByIDs(ctx context.Context, ids []string) ([]entities.User, error)
}
