package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	inviteCodeLength   = 8
	inviteCodeAttempts = 5
)

type WorkshopInput struct {
	Name      string
	Address   string
	Phone     string
	GSTNumber string
	Currency  string
}

// WorkshopPatch carries the fields to change. Nil fields are left alone.
type WorkshopPatch struct {
	Name      *string
	Address   *string
	Phone     *string
	GSTNumber *string
	Currency  *string
}

// IWorkshopUseCase exposes workshop and invite code operations. Everything
// but GetMine is owner-only.
type IWorkshopUseCase interface {
	Create(ctx context.Context, caller entities.User, in WorkshopInput) (entities.Workshop, error)
	GetMine(ctx context.Context, caller entities.User) (entities.Workshop, error)
	Update(ctx context.Context, caller entities.User, workshopID string, patch WorkshopPatch) (entities.Workshop, error)
	IssueInviteCode(ctx context.Context, caller entities.User, workshopID string) (entities.InviteCode, error)
	ListInviteCodes(ctx context.Context, caller entities.User, workshopID string) ([]entities.InviteCode, error)
	RevokeInviteCode(ctx context.Context, caller entities.User, workshopID, code string) error
}

type WorkshopUseCase struct {
	workshops       interfaces.IWorkshopRepository
	invites         interfaces.IInviteCodeRepository
	scopes          *ScopeResolver
	defaultCurrency string
	log             logrus.FieldLogger
	now             func() time.Time
	newCode         func() string
}

var _ IWorkshopUseCase = (*WorkshopUseCase)(nil)

func NewWorkshopUseCase(
	workshops interfaces.IWorkshopRepository,
	invites interfaces.IInviteCodeRepository,
	scopes *ScopeResolver,
	defaultCurrency string,
	log logrus.FieldLogger,
) *WorkshopUseCase {
	if defaultCurrency == "" {
		defaultCurrency = entities.DefaultCurrency
	}
	return &WorkshopUseCase{
		workshops:       workshops,
		invites:         invites,
		scopes:          scopes,
		defaultCurrency: defaultCurrency,
		log:             log,
		now:             func() time.Time { return time.Now().UTC() },
		newCode:         randomInviteCode,
	}
}

func randomInviteCode() string {
	return strings.ToUpper(uuid.NewString()[:inviteCodeLength])
}

func (u *WorkshopUseCase) Create(ctx context.Context, caller entities.User, in WorkshopInput) (entities.Workshop, error) {
	if caller.Role != entities.RoleOwner {
		return entities.Workshop{}, ErrOwnerOnly
	}

	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return entities.Workshop{}, ErrMissingFields
	}

	existing, err := u.workshops.GetByOwnerID(ctx, caller.ID)
	if err != nil {
		return entities.Workshop{}, err
	}
	if existing.ID != "" {
		return entities.Workshop{}, ErrWorkshopAlreadyExists
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = u.defaultCurrency
	}

	w := entities.Workshop{
		ID:        uuid.NewString(),
		OwnerID:   caller.ID,
		Name:      name,
		Address:   strings.TrimSpace(in.Address),
		Phone:     phone,
		GSTNumber: strings.TrimSpace(in.GSTNumber),
		Currency:  currency,
		CreatedAt: u.now(),
	}

	created, err := u.workshops.Create(ctx, w)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Workshop{}, ErrWorkshopAlreadyExists
		}
		return entities.Workshop{}, err
	}

	u.log.WithFields(logrus.Fields{"workshop_id": created.ID, "owner_id": caller.ID}).Info("[workshop][usecase] workshop created")
	return created, nil
}

// GetMine resolves through ownership for owners and through the active
// binding for managers.
func (u *WorkshopUseCase) GetMine(ctx context.Context, caller entities.User) (entities.Workshop, error) {
	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return entities.Workshop{}, err
	}
	if !scope.HasWorkshop() {
		return entities.Workshop{}, ErrWorkshopNotFound
	}
	return *scope.Workshop, nil
}

// owned returns the workshop only if the caller owns it. Foreign workshops
// are reported as not found.
func (u *WorkshopUseCase) owned(ctx context.Context, caller entities.User, workshopID string) (entities.Workshop, error) {
	if caller.Role != entities.RoleOwner {
		return entities.Workshop{}, ErrOwnerOnly
	}
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.Workshop{}, ErrWorkshopNotFound
	}
	w, err := u.workshops.GetByID(ctx, workshopID)
	if err != nil {
		return entities.Workshop{}, err
	}
	if w.ID == "" || w.OwnerID != caller.ID {
		return entities.Workshop{}, ErrWorkshopNotFound
	}
	return w, nil
}

func (u *WorkshopUseCase) Update(ctx context.Context, caller entities.User, workshopID string, patch WorkshopPatch) (entities.Workshop, error) {
	w, err := u.owned(ctx, caller, workshopID)
	if err != nil {
		return entities.Workshop{}, err
	}

	changed := false
	set := func(dst *string, src *string) {
		if src == nil {
			return
		}
		if v := strings.TrimSpace(*src); *dst != v {
			*dst = v
			changed = true
		}
	}
	if patch.Currency != nil {
		c := strings.ToUpper(*patch.Currency)
		patch.Currency = &c
	}
	set(&w.Name, patch.Name)
	set(&w.Address, patch.Address)
	set(&w.Phone, patch.Phone)
	set(&w.GSTNumber, patch.GSTNumber)
	set(&w.Currency, patch.Currency)

	if w.Name == "" || w.Phone == "" || w.Currency == "" {
		return entities.Workshop{}, ErrMissingFields
	}
	if !changed {
		return w, nil
	}
	w, err = u.workshops.Update(ctx, w)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Workshop{}, ErrWorkshopNotFound
	}
	return w, err
}

func (u *WorkshopUseCase) IssueInviteCode(ctx context.Context, caller entities.User, workshopID string) (entities.InviteCode, error) {
	w, err := u.owned(ctx, caller, workshopID)
	if err != nil {
		return entities.InviteCode{}, err
	}

	for attempt := 1; attempt <= inviteCodeAttempts; attempt++ {
		code := entities.InviteCode{
			ID:         uuid.NewString(),
			Code:       u.newCode(),
			WorkshopID: w.ID,
			CreatedBy:  caller.ID,
			Active:     true,
			CreatedAt:  u.now(),
		}
		created, err := u.invites.Create(ctx, code)
		if err == nil {
			u.log.WithFields(logrus.Fields{"workshop_id": w.ID, "code": created.Code}).Info("[workshop][usecase] invite code issued")
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.InviteCode{}, err
		}
		u.log.WithFields(logrus.Fields{"workshop_id": w.ID, "attempt": attempt}).Warn("[workshop][usecase] invite code collision")
	}
	return entities.InviteCode{}, ErrConflict
}

func (u *WorkshopUseCase) ListInviteCodes(ctx context.Context, caller entities.User, workshopID string) ([]entities.InviteCode, error) {
	w, err := u.owned(ctx, caller, workshopID)
	if err != nil {
		return nil, err
	}
	codes, err := u.invites.ListByWorkshopID(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []entities.InviteCode{}
	}
	return codes, nil
}

func (u *WorkshopUseCase) RevokeInviteCode(ctx context.Context, caller entities.User, workshopID, code string) error {
	w, err := u.owned(ctx, caller, workshopID)
	if err != nil {
		return err
	}
	code = normalizeCode(code)
	if code == "" {
		return ErrInviteCodeNotFound
	}
	ok, err := u.invites.Deactivate(ctx, w.ID, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInviteCodeNotFound
	}
	return nil
}
