package usecase

import (
	"context"
	"strings"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// IManagerUseCase exposes the owner's view of the workshop's managers.
type IManagerUseCase interface {
	List(ctx context.Context, caller entities.User) ([]entities.ManagerView, error)
	Remove(ctx context.Context, caller entities.User, bindingID string) error
}

type ManagerUseCase struct {
	managers interfaces.IManagerRepository
	users    interfaces.IUserRepository
	scopes   *ScopeResolver
	log      logrus.FieldLogger
}

var _ IManagerUseCase = (*ManagerUseCase)(nil)

func NewManagerUseCase(
	managers interfaces.IManagerRepository,
	users interfaces.IUserRepository,
	scopes *ScopeResolver,
	log logrus.FieldLogger,
) *ManagerUseCase {
	return &ManagerUseCase{managers: managers, users: users, scopes: scopes, log: log}
}

// List returns an empty result for an owner without a workshop.
func (u *ManagerUseCase) List(ctx context.Context, caller entities.User) ([]entities.ManagerView, error) {
	if caller.Role != entities.RoleOwner {
		return nil, ErrOwnerOnly
	}
	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !scope.HasWorkshop() {
		return []entities.ManagerView{}, nil
	}

	bindings, err := u.managers.ListActiveByWorkshopID(ctx, scope.WorkshopID())
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bindings))
	for _, b := range bindings {
		ids = append(ids, b.UserID)
	}
	byID := map[string]entities.User{}
	if ids = distinct(ids); len(ids) > 0 {
		list, err := u.users.ListByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, usr := range list {
			byID[usr.ID] = usr
		}
	}

	out := make([]entities.ManagerView, 0, len(bindings))
	for _, b := range bindings {
		view := entities.ManagerView{ManagerBinding: b}
		if usr, ok := byID[b.UserID]; ok {
			view.User = &usr
		}
		out = append(out, view)
	}
	return out, nil
}

// Remove deactivates the binding. The account and its historical jobs and
// payments stay in place.
func (u *ManagerUseCase) Remove(ctx context.Context, caller entities.User, bindingID string) error {
	scope, err := u.scopes.OwnerWorkshop(ctx, caller)
	if err != nil {
		return err
	}
	bindingID = strings.TrimSpace(bindingID)
	if bindingID == "" {
		return ErrManagerNotFound
	}

	ok, err := u.managers.Deactivate(ctx, scope.WorkshopID(), bindingID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrManagerNotFound
	}

	u.log.WithFields(logrus.Fields{"workshop_id": scope.WorkshopID(), "binding_id": bindingID}).Info("[manager][usecase] manager removed")
	return nil
}
