package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SettlementInput struct {
	Amount float64
	JobIDs []string
	Notes  string
}

// ISettlementUseCase exposes cash hand-over from managers to the owner.
type ISettlementUseCase interface {
	Submit(ctx context.Context, caller entities.User, in SettlementInput) (entities.Settlement, error)
	List(ctx context.Context, caller entities.User, confirmed *bool) ([]entities.SettlementView, error)
	Confirm(ctx context.Context, caller entities.User, settlementID string) (entities.Settlement, error)
}

type SettlementUseCase struct {
	settlements interfaces.ISettlementRepository
	users       interfaces.IUserRepository
	scopes      *ScopeResolver
	log         logrus.FieldLogger
	now         func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	settlements interfaces.ISettlementRepository,
	users interfaces.IUserRepository,
	scopes *ScopeResolver,
	log logrus.FieldLogger,
) *SettlementUseCase {
	return &SettlementUseCase{
		settlements: settlements,
		users:       users,
		scopes:      scopes,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores the job ids as given; they are not checked against jobs.
func (u *SettlementUseCase) Submit(ctx context.Context, caller entities.User, in SettlementInput) (entities.Settlement, error) {
	scope, err := u.scopes.ManagerBinding(ctx, caller)
	if err != nil {
		return entities.Settlement{}, err
	}
	if in.Amount <= 0 {
		return entities.Settlement{}, ErrInvalidAmount
	}

	jobIDs := make([]string, 0, len(in.JobIDs))
	for _, id := range in.JobIDs {
		if id = strings.TrimSpace(id); id != "" {
			jobIDs = append(jobIDs, id)
		}
	}

	s := entities.Settlement{
		ID:            uuid.NewString(),
		ManagerID:     caller.ID,
		WorkshopID:    scope.Binding.WorkshopID,
		Amount:        in.Amount,
		JobIDs:        jobIDs,
		Notes:         strings.TrimSpace(in.Notes),
		SubmittedDate: u.now(),
	}

	s, err = u.settlements.Create(ctx, s)
	if err != nil {
		return entities.Settlement{}, err
	}

	u.log.WithFields(logrus.Fields{"settlement_id": s.ID, "workshop_id": s.WorkshopID, "amount": s.Amount}).Info("[settlement][usecase] settlement submitted")
	return s, nil
}

// List scopes managers to their own submissions and owners to their
// workshop. An owner without a workshop gets an empty result.
func (u *SettlementUseCase) List(ctx context.Context, caller entities.User, confirmed *bool) ([]entities.SettlementView, error) {
	filter := entities.SettlementFilter{Confirmed: confirmed}

	switch caller.Role {
	case entities.RoleManager:
		filter.ManagerID = caller.ID
	case entities.RoleOwner:
		scope, err := u.scopes.Resolve(ctx, caller)
		if err != nil {
			return nil, err
		}
		if !scope.HasWorkshop() {
			return []entities.SettlementView{}, nil
		}
		filter.WorkshopID = scope.WorkshopID()
	default:
		return nil, ErrAccessDenied
	}

	list, err := u.settlements.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	managerIDs := make([]string, 0, len(list))
	for _, s := range list {
		managerIDs = append(managerIDs, s.ManagerID)
	}
	names, err := userNames(ctx, u.users, managerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]entities.SettlementView, 0, len(list))
	for _, s := range list {
		out = append(out, entities.SettlementView{Settlement: s, ManagerName: names[s.ManagerID]})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].SubmittedDate.After(out[b].SubmittedDate) })
	return out, nil
}

func (u *SettlementUseCase) Confirm(ctx context.Context, caller entities.User, settlementID string) (entities.Settlement, error) {
	if caller.Role != entities.RoleOwner {
		return entities.Settlement{}, ErrOwnerOnly
	}
	settlementID = strings.TrimSpace(settlementID)
	if settlementID == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}

	s, err := u.settlements.GetByID(ctx, settlementID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if s.ID == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}

	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return entities.Settlement{}, err
	}
	if !scope.HasWorkshop() || scope.WorkshopID() != s.WorkshopID {
		return entities.Settlement{}, ErrSettlementNotFound
	}

	s, err = u.settlements.Confirm(ctx, s.ID, u.now())
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	if err != nil {
		return entities.Settlement{}, err
	}

	u.log.WithFields(logrus.Fields{"settlement_id": s.ID, "workshop_id": s.WorkshopID}).Info("[settlement][usecase] settlement confirmed")
	return s, nil
}
