package usecase

import (
	"testing"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/infrastructure/logging"
	mock_interfaces "workshop_jobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	ownerUser   = entities.User{ID: "o-1", Email: "owner@test.dev", Name: "Asha", Role: entities.RoleOwner}
	managerUser = entities.User{ID: "m-1", Email: "ravi@test.dev", Name: "Ravi", Role: entities.RoleManager}
	peerUser    = entities.User{ID: "m-2", Email: "kiran@test.dev", Name: "Kiran", Role: entities.RoleManager}

	workshop1 = entities.Workshop{ID: "w-1", OwnerID: "o-1", Name: "Speed Garage", Phone: "999", Currency: "INR"}
	binding1  = entities.ManagerBinding{ID: "b-1", UserID: "m-1", WorkshopID: "w-1", Active: true}
	binding2  = entities.ManagerBinding{ID: "b-2", UserID: "m-2", WorkshopID: "w-1", Active: true}
)

type fixture struct {
	users       *mock_interfaces.MockIUserRepository
	workshops   *mock_interfaces.MockIWorkshopRepository
	invites     *mock_interfaces.MockIInviteCodeRepository
	managers    *mock_interfaces.MockIManagerRepository
	jobs        *mock_interfaces.MockIJobRepository
	payments    *mock_interfaces.MockIPaymentRepository
	settlements *mock_interfaces.MockISettlementRepository
	hasher      *mock_interfaces.MockIPasswordHasher
	tokens      *mock_interfaces.MockITokenCodec
	renderer    *mock_interfaces.MockIDocumentRenderer
	exporter    *mock_interfaces.MockISpreadsheetExporter
	scopes      *ScopeResolver
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:       mock_interfaces.NewMockIUserRepository(ctrl),
		workshops:   mock_interfaces.NewMockIWorkshopRepository(ctrl),
		invites:     mock_interfaces.NewMockIInviteCodeRepository(ctrl),
		managers:    mock_interfaces.NewMockIManagerRepository(ctrl),
		jobs:        mock_interfaces.NewMockIJobRepository(ctrl),
		payments:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		settlements: mock_interfaces.NewMockISettlementRepository(ctrl),
		hasher:      mock_interfaces.NewMockIPasswordHasher(ctrl),
		tokens:      mock_interfaces.NewMockITokenCodec(ctrl),
		renderer:    mock_interfaces.NewMockIDocumentRenderer(ctrl),
		exporter:    mock_interfaces.NewMockISpreadsheetExporter(ctrl),
	}
	f.scopes = NewScopeResolver(f.workshops, f.managers)
	return f
}

func fixedClock() time.Time { return fixedNow }

// ownerResolves expects the owner lookup to find w (zero value for none).
func (f *fixture) ownerResolves(u entities.User, w entities.Workshop) {
	f.workshops.EXPECT().GetByOwnerID(gomock.Any(), u.ID).Return(w, nil)
}

// managerResolves expects the binding lookup of u, then its workshop.
func (f *fixture) managerResolves(u entities.User, b entities.ManagerBinding, w entities.Workshop) {
	f.managers.EXPECT().GetActiveByUserID(gomock.Any(), u.ID).Return(b, nil)
	if b.ID != "" {
		f.workshops.EXPECT().GetByID(gomock.Any(), b.WorkshopID).Return(w, nil)
	}
}

func (f *fixture) auth() *AuthUseCase {
	uc := NewAuthUseCase(f.users, f.invites, f.scopes, f.hasher, f.tokens, logging.Discard())
	uc.now = fixedClock
	return uc
}

func (f *fixture) workshop() *WorkshopUseCase {
	uc := NewWorkshopUseCase(f.workshops, f.invites, f.scopes, "INR", logging.Discard())
	uc.now = fixedClock
	return uc
}

func (f *fixture) manager() *ManagerUseCase {
	return NewManagerUseCase(f.managers, f.users, f.scopes, logging.Discard())
}

func (f *fixture) job(policy entities.StatusPolicy) *JobUseCase {
	uc := NewJobUseCase(f.jobs, f.payments, f.users, f.scopes, policy, logging.Discard())
	uc.now = fixedClock
	return uc
}

func (f *fixture) payment() *PaymentUseCase {
	uc := NewPaymentUseCase(f.payments, f.jobs, f.workshops, f.users, f.scopes, logging.Discard())
	uc.now = fixedClock
	return uc
}

func (f *fixture) settlement() *SettlementUseCase {
	uc := NewSettlementUseCase(f.settlements, f.users, f.scopes, logging.Discard())
	uc.now = fixedClock
	return uc
}

func (f *fixture) analytics() *AnalyticsUseCase {
	uc := NewAnalyticsUseCase(f.jobs, f.payments, f.exporter, f.scopes, logging.Discard())
	uc.now = fixedClock
	return uc
}

func strPtr(v string) *string    { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
