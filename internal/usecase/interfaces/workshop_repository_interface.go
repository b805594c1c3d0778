package interfaces

import (
	"context"
	"workshop_jobs/internal/domain/entities"
)

//go:generate mockgen -source=workshop_repository_interface.go -destination=mocks/workshop_repository_interface.go -package=mock_interfaces

// IWorkshopRepository persists workshops, at most one per owner.
type IWorkshopRepository interface {
	Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error)
	GetByID(ctx context.Context, id string) (entities.Workshop, error)
	GetByOwnerID(ctx context.Context, ownerID string) (entities.Workshop, error)
	// Update returns ErrNotFound when the workshop is gone.
	Update(ctx context.Context, w entities.Workshop) (entities.Workshop, error)
}

// IInviteCodeRepository persists invite codes keyed by their unique code.
type IInviteCodeRepository interface {
	Create(ctx context.Context, c entities.InviteCode) (entities.InviteCode, error)
	GetByCode(ctx context.Context, code string) (entities.InviteCode, error)
	ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.InviteCode, error)
	// Deactivate revokes an active unused code of the workshop. It reports
	// false when no such code exists.
	Deactivate(ctx context.Context, workshopID, code string) (bool, error)
}

// IManagerRepository persists manager bindings.
type IManagerRepository interface {
	GetActiveByUserID(ctx context.Context, userID string) (entities.ManagerBinding, error)
	ListActiveByWorkshopID(ctx context.Context, workshopID string) ([]entities.ManagerBinding, error)
	// Deactivate clears the active flag of a binding of the workshop. It
	// reports false when no active binding matches.
	Deactivate(ctx context.Context, workshopID, bindingID string) (bool, error)
}
