package usecase

import (
	"context"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"
)

// ScopeResolver derives the caller's tenancy scope. Every use case goes
// through it instead of looking workshops up on its own.
type ScopeResolver struct {
	workshops interfaces.IWorkshopRepository
	managers  interfaces.IManagerRepository
}

func NewScopeResolver(workshops interfaces.IWorkshopRepository, managers interfaces.IManagerRepository) *ScopeResolver {
	return &ScopeResolver{workshops: workshops, managers: managers}
}

// Resolve never fails for a missing workshop or binding; callers decide
// whether that means NotFound or an empty result.
func (r *ScopeResolver) Resolve(ctx context.Context, user entities.User) (entities.Scope, error) {
	scope := entities.Scope{User: user}

	switch user.Role {
	case entities.RoleOwner:
		w, err := r.workshops.GetByOwnerID(ctx, user.ID)
		if err != nil {
			return entities.Scope{}, err
		}
		if w.ID != "" {
			scope.Workshop = &w
		}
	case entities.RoleManager:
		b, err := r.managers.GetActiveByUserID(ctx, user.ID)
		if err != nil {
			return entities.Scope{}, err
		}
		if b.ID == "" {
			return scope, nil
		}
		scope.Binding = &b
		w, err := r.workshops.GetByID(ctx, b.WorkshopID)
		if err != nil {
			return entities.Scope{}, err
		}
		if w.ID != "" {
			scope.Workshop = &w
		}
	default:
		return entities.Scope{}, ErrAccessDenied
	}

	return scope, nil
}

// OwnerWorkshop resolves the workshop of an owner caller.
func (r *ScopeResolver) OwnerWorkshop(ctx context.Context, user entities.User) (entities.Scope, error) {
	if user.Role != entities.RoleOwner {
		return entities.Scope{}, ErrOwnerOnly
	}
	scope, err := r.Resolve(ctx, user)
	if err != nil {
		return entities.Scope{}, err
	}
	if !scope.HasWorkshop() {
		return entities.Scope{}, ErrWorkshopNotFound
	}
	return scope, nil
}

// ManagerBinding resolves the active binding of a manager caller.
func (r *ScopeResolver) ManagerBinding(ctx context.Context, user entities.User) (entities.Scope, error) {
	if user.Role != entities.RoleManager {
		return entities.Scope{}, ErrManagerOnly
	}
	scope, err := r.Resolve(ctx, user)
	if err != nil {
		return entities.Scope{}, err
	}
	if scope.Binding == nil {
		return entities.Scope{}, ErrManagerRecordNotFound
	}
	return scope, nil
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// userNames loads display names for a set of user ids in one round trip.
func userNames(ctx context.Context, users interfaces.IUserRepository, ids []string) (map[string]string, error) {
	names := map[string]string{}
	ids = distinct(ids)
	if len(ids) == 0 {
		return names, nil
	}
	list, err := users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		names[u.ID] = u.Name
	}
	return names, nil
}
