package sqlstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/infrastructure/database"
	"workshop_jobs/internal/infrastructure/logging"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:sqlstore_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.ConnectSQL(dsn, logging.Discard())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserStore(db)

	created, err := users.Create(ctx, entities.User{ID: "o-1", Email: "Owner@Shop.in", Name: "Asha", Role: entities.RoleOwner, CreatedAt: testNow})
	require.NoError(t, err)
	assert.Equal(t, "owner@shop.in", created.Email)

	_, err = users.Create(ctx, entities.User{ID: "o-2", Email: "OWNER@shop.in", Role: entities.RoleOwner, CreatedAt: testNow})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateKey)

	got, err := users.GetByEmail(ctx, " owner@SHOP.in ")
	require.NoError(t, err)
	assert.Equal(t, "o-1", got.ID)
	assert.True(t, got.CreatedAt.Equal(testNow))

	missing, err := users.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := users.ListByIDs(ctx, []string{"o-1", "ghost"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Asha", list[0].Name)
}

func TestUserStore_CreateManager(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserStore(db)
	invites := NewInviteCodeStore(db)
	managers := NewManagerStore(db)

	_, err := invites.Create(ctx, entities.InviteCode{ID: "i-1", Code: "ABCD1234", WorkshopID: "w-1", CreatedBy: "o-1", Active: true, CreatedAt: testNow})
	require.NoError(t, err)
	_, err = users.Create(ctx, entities.User{ID: "x-1", Email: "taken@shop.in", Role: entities.RoleOwner, CreatedAt: testNow})
	require.NoError(t, err)

	binding := func(id, userID string) entities.ManagerBinding {
		return entities.ManagerBinding{ID: id, UserID: userID, WorkshopID: "w-1", JoinedAt: testNow, Active: true, Permissions: map[string]bool{}}
	}

	t.Run("duplicate email rolls the consumption back", func(t *testing.T) {
		_, err := users.CreateManager(ctx, entities.User{ID: "m-0", Email: "taken@shop.in", Role: entities.RoleManager}, "ABCD1234", binding("b-0", "m-0"), testNow)
		assert.ErrorIs(t, err, interfaces.ErrDuplicateKey)

		code, err := invites.GetByCode(ctx, "ABCD1234")
		require.NoError(t, err)
		assert.True(t, code.IsRedeemable())
		b, err := managers.GetActiveByUserID(ctx, "m-0")
		require.NoError(t, err)
		assert.Empty(t, b.ID)
	})

	t.Run("consumes the code and binds the manager", func(t *testing.T) {
		_, err := users.CreateManager(ctx, entities.User{ID: "m-1", Email: "ravi@shop.in", Role: entities.RoleManager, CreatedAt: testNow}, "ABCD1234", binding("b-1", "m-1"), testNow)
		require.NoError(t, err)

		code, err := invites.GetByCode(ctx, "ABCD1234")
		require.NoError(t, err)
		assert.Equal(t, "m-1", code.UsedBy)
		require.NotNil(t, code.UsedAt)
		assert.False(t, code.IsRedeemable())

		b, err := managers.GetActiveByUserID(ctx, "m-1")
		require.NoError(t, err)
		assert.Equal(t, "w-1", b.WorkshopID)
		assert.NotNil(t, b.Permissions)
	})

	t.Run("a consumed code cannot be used again", func(t *testing.T) {
		_, err := users.CreateManager(ctx, entities.User{ID: "m-2", Email: "second@shop.in", Role: entities.RoleManager}, "ABCD1234", binding("b-2", "m-2"), testNow)
		assert.ErrorIs(t, err, interfaces.ErrInviteUnavailable)

		u, err := users.GetByID(ctx, "m-2")
		require.NoError(t, err)
		assert.Empty(t, u.ID)
	})
}

func TestWorkshopStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	workshops := NewWorkshopStore(db)

	_, err := workshops.Create(ctx, entities.Workshop{ID: "w-1", OwnerID: "o-1", Name: "Speed Motors", Phone: "111", Currency: "INR", CreatedAt: testNow})
	require.NoError(t, err)

	_, err = workshops.Create(ctx, entities.Workshop{ID: "w-2", OwnerID: "o-1", Name: "Second", Phone: "222", CreatedAt: testNow})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateKey)

	byOwner, err := workshops.GetByOwnerID(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "w-1", byOwner.ID)

	byOwner.Name = "Speed Motors & Sons"
	byOwner.Address = ""
	updated, err := workshops.Update(ctx, byOwner)
	require.NoError(t, err)
	assert.Equal(t, "Speed Motors & Sons", updated.Name)
	assert.Equal(t, "o-1", updated.OwnerID)

	_, err = workshops.Update(ctx, entities.Workshop{ID: "w-9", Name: "x"})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestInviteCodeStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	invites := NewInviteCodeStore(db)

	_, err := invites.Create(ctx, entities.InviteCode{ID: "i-1", Code: "OLD00000", WorkshopID: "w-1", Active: true, CreatedAt: testNow.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = invites.Create(ctx, entities.InviteCode{ID: "i-2", Code: "NEW00000", WorkshopID: "w-1", Active: true, CreatedAt: testNow})
	require.NoError(t, err)
	_, err = invites.Create(ctx, entities.InviteCode{ID: "i-3", Code: "NEW00000", WorkshopID: "w-2", Active: true, CreatedAt: testNow})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateKey)

	codes, err := invites.ListByWorkshopID(ctx, "w-1")
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "NEW00000", codes[0].Code)

	ok, err := invites.Deactivate(ctx, "w-2", "OLD00000")
	require.NoError(t, err)
	assert.False(t, ok, "foreign workshop must not revoke")

	ok, err = invites.Deactivate(ctx, "w-1", "OLD00000")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = invites.Deactivate(ctx, "w-1", "OLD00000")
	require.NoError(t, err)
	assert.False(t, ok, "already inactive")

	revoked, err := invites.GetByCode(ctx, "OLD00000")
	require.NoError(t, err)
	assert.False(t, revoked.IsRedeemable())
}

func TestManagerStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	managers := NewManagerStore(db)

	for i, id := range []string{"b-1", "b-2"} {
		m := toManagerModel(entities.ManagerBinding{ID: id, UserID: fmt.Sprintf("m-%d", i+1), WorkshopID: "w-1", JoinedAt: testNow.Add(time.Duration(i) * time.Minute), Active: true, Permissions: map[string]bool{"jobs": true}})
		require.NoError(t, db.Create(&m).Error)
	}

	list, err := managers.ListActiveByWorkshopID(ctx, "w-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b-1", list[0].ID)
	assert.True(t, list[0].Permissions["jobs"])

	ok, err := managers.Deactivate(ctx, "w-2", "b-1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = managers.Deactivate(ctx, "w-1", "b-1")
	require.NoError(t, err)
	assert.True(t, ok)

	b, err := managers.GetActiveByUserID(ctx, "m-1")
	require.NoError(t, err)
	assert.Empty(t, b.ID)

	list, err = managers.ListActiveByWorkshopID(ctx, "w-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func sampleJob(id, managerID string, created time.Time) entities.Job {
	return entities.Job{
		ID:              id,
		WorkshopID:      "w-1",
		ManagerID:       managerID,
		CustomerName:    "Kumar",
		Phone:           "999",
		CarModel:        "Swift",
		VehicleNumber:   "KA01AB1234",
		WorkDescription: "Brake pads",
		EstimatedAmount: 5000,
		Status:          entities.JobStatusPending,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func audit(id, jobID string, kind entities.JobUpdateType, at time.Time) entities.JobUpdate {
	return entities.JobUpdate{ID: id, JobID: jobID, UpdatedBy: "m-1", UpdateType: kind, Description: string(kind), Timestamp: at}
}

func TestJobStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	jobs := NewJobStore(db)

	_, err := jobs.Create(ctx, sampleJob("j-1", "m-1", testNow.Add(-time.Hour)), audit("u-1", "j-1", entities.JobUpdateCreated, testNow.Add(-time.Hour)))
	require.NoError(t, err)
	_, err = jobs.Create(ctx, sampleJob("j-2", "m-2", testNow), audit("u-2", "j-2", entities.JobUpdateCreated, testNow))
	require.NoError(t, err)

	t.Run("list needs a key", func(t *testing.T) {
		_, err := jobs.List(ctx, entities.JobFilter{})
		assert.ErrorIs(t, err, interfaces.ErrUnboundedQuery)
	})

	t.Run("list filters and sorts newest first", func(t *testing.T) {
		all, err := jobs.List(ctx, entities.JobFilter{WorkshopID: "w-1"})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "j-2", all[0].ID)

		mine, err := jobs.List(ctx, entities.JobFilter{ManagerID: "m-1"})
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "j-1", mine[0].ID)
	})

	t.Run("update writes the job and its audit entry", func(t *testing.T) {
		j, err := jobs.GetByID(ctx, "j-1")
		require.NoError(t, err)
		done := testNow.Add(time.Minute)
		j.Status = entities.JobStatusCompleted
		j.CompletedAt = &done
		j.AdvancePaid = 750
		j.UpdatedAt = done

		returned, err := jobs.Update(ctx, j, []string{"status", "advance_paid"}, audit("u-3", "j-1", entities.JobUpdateModified, done))
		require.NoError(t, err)
		assert.Equal(t, 750.0, returned.AdvancePaid)

		stored, err := jobs.GetByID(ctx, "j-1")
		require.NoError(t, err)
		assert.Equal(t, entities.JobStatusCompleted, stored.Status)
		require.NotNil(t, stored.CompletedAt)
		assert.True(t, stored.CompletedAt.Equal(done))
		assert.True(t, stored.UpdatedAt.Equal(done))

		updates, err := jobs.ListUpdates(ctx, "j-1")
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, entities.JobUpdateModified, updates[0].UpdateType)

		completed, err := jobs.List(ctx, entities.JobFilter{WorkshopID: "w-1", Status: entities.JobStatusCompleted})
		require.NoError(t, err)
		assert.Len(t, completed, 1)
	})

	t.Run("stale updates keep the first completion stamp", func(t *testing.T) {
		first, err := jobs.GetByID(ctx, "j-2")
		require.NoError(t, err)
		second, err := jobs.GetByID(ctx, "j-2")
		require.NoError(t, err)

		completedAt := testNow.Add(time.Hour)
		first.Status = entities.JobStatusCompleted
		first.CompletedAt = &completedAt
		first.UpdatedAt = completedAt
		_, err = jobs.Update(ctx, first, []string{"status"}, audit("u-4", "j-2", entities.JobUpdateModified, completedAt))
		require.NoError(t, err)

		deliveredAt := testNow.Add(2 * time.Hour)
		second.Status = entities.JobStatusDelivered
		second.CompletedAt = &deliveredAt
		second.UpdatedAt = deliveredAt
		returned, err := jobs.Update(ctx, second, []string{"status"}, audit("u-5", "j-2", entities.JobUpdateModified, deliveredAt))
		require.NoError(t, err)
		require.NotNil(t, returned.CompletedAt)
		assert.True(t, returned.CompletedAt.Equal(completedAt), "got %v", returned.CompletedAt)

		stored, err := jobs.GetByID(ctx, "j-2")
		require.NoError(t, err)
		assert.Equal(t, entities.JobStatusDelivered, stored.Status)
		require.NotNil(t, stored.CompletedAt)
		assert.True(t, stored.CompletedAt.Equal(completedAt), "got %v", stored.CompletedAt)
		assert.True(t, stored.UpdatedAt.Equal(deliveredAt))
	})

	t.Run("stale updates keep each other's fields", func(t *testing.T) {
		first, err := jobs.GetByID(ctx, "j-2")
		require.NoError(t, err)
		second, err := jobs.GetByID(ctx, "j-2")
		require.NoError(t, err)

		first.WorkerAssigned = "Ravi"
		_, err = jobs.Update(ctx, first, []string{"worker_assigned"}, audit("u-6", "j-2", entities.JobUpdateModified, testNow))
		require.NoError(t, err)

		second.InternalNotes = "call before delivery"
		_, err = jobs.Update(ctx, second, []string{"internal_notes"}, audit("u-7", "j-2", entities.JobUpdateModified, testNow))
		require.NoError(t, err)

		stored, err := jobs.GetByID(ctx, "j-2")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", stored.WorkerAssigned)
		assert.Equal(t, "call before delivery", stored.InternalNotes)
	})

	t.Run("update rejects unknown fields", func(t *testing.T) {
		j, err := jobs.GetByID(ctx, "j-2")
		require.NoError(t, err)
		_, err = jobs.Update(ctx, j, []string{"manager_id"}, audit("u-8", "j-2", entities.JobUpdateModified, testNow))
		assert.Error(t, err)
	})

	t.Run("update of a missing job writes nothing", func(t *testing.T) {
		_, err := jobs.Update(ctx, sampleJob("j-9", "m-1", testNow), []string{"status"}, audit("u-9", "j-9", entities.JobUpdateModified, testNow))
		assert.ErrorIs(t, err, interfaces.ErrNotFound)

		updates, err := jobs.ListUpdates(ctx, "j-9")
		require.NoError(t, err)
		assert.Empty(t, updates)
	})
}

func TestPaymentStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	payments := NewPaymentStore(db)
	jobs := NewJobStore(db)

	pay := func(id, jobID, collector string, amount float64, at time.Time) {
		_, err := payments.Create(ctx,
			entities.Payment{ID: id, JobID: jobID, Amount: amount, PaymentType: "cash", CollectedByManagerID: collector, PaymentDate: at},
			audit("a-"+id, jobID, entities.JobUpdatePayment, at))
		require.NoError(t, err)
	}
	pay("p-1", "j-1", "m-1", 1000, testNow.Add(-2*time.Hour))
	pay("p-2", "j-1", "m-1", 500.5, testNow.Add(-time.Hour))
	pay("p-3", "j-2", "m-2", 200, testNow)

	t.Run("payment audit is appended to the job trail", func(t *testing.T) {
		updates, err := jobs.ListUpdates(ctx, "j-1")
		require.NoError(t, err)
		assert.Len(t, updates, 2)
	})

	t.Run("filters", func(t *testing.T) {
		byJob, err := payments.List(ctx, entities.PaymentFilter{JobID: "j-1"})
		require.NoError(t, err)
		require.Len(t, byJob, 2)
		assert.Equal(t, "p-2", byJob[0].ID)

		byJobs, err := payments.List(ctx, entities.PaymentFilter{JobIDs: []string{"j-1", "j-2"}})
		require.NoError(t, err)
		assert.Len(t, byJobs, 3)

		none, err := payments.List(ctx, entities.PaymentFilter{JobIDs: []string{}})
		require.NoError(t, err)
		assert.Empty(t, none)

		byCollector, err := payments.List(ctx, entities.PaymentFilter{CollectedBy: "m-2"})
		require.NoError(t, err)
		require.Len(t, byCollector, 1)
		assert.Equal(t, "p-3", byCollector[0].ID)

		_, err = payments.List(ctx, entities.PaymentFilter{})
		assert.ErrorIs(t, err, interfaces.ErrUnboundedQuery)
	})

	t.Run("re-confirming stamps the latest date", func(t *testing.T) {
		first, err := payments.Confirm(ctx, "p-1", testNow)
		require.NoError(t, err)
		assert.True(t, first.ConfirmedByOwner)
		require.NotNil(t, first.ConfirmationDate)
		assert.True(t, first.ConfirmationDate.Equal(testNow))

		later := testNow.Add(time.Hour)
		again, err := payments.Confirm(ctx, "p-1", later)
		require.NoError(t, err)
		assert.True(t, again.ConfirmedByOwner)
		require.NotNil(t, again.ConfirmationDate)
		assert.True(t, again.ConfirmationDate.Equal(later))

		confirmed := true
		list, err := payments.List(ctx, entities.PaymentFilter{JobID: "j-1", Confirmed: &confirmed})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "p-1", list[0].ID)

		_, err = payments.Confirm(ctx, "p-9", testNow)
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestSettlementStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	settlements := NewSettlementStore(db)

	_, err := settlements.Create(ctx, entities.Settlement{ID: "s-1", ManagerID: "m-1", WorkshopID: "w-1", Amount: 1500, JobIDs: []string{"j-1", "j-2"}, SubmittedDate: testNow})
	require.NoError(t, err)
	_, err = settlements.Create(ctx, entities.Settlement{ID: "s-2", ManagerID: "m-2", WorkshopID: "w-1", Amount: 300, SubmittedDate: testNow.Add(time.Hour)})
	require.NoError(t, err)

	got, err := settlements.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"j-1", "j-2"}, got.JobIDs)

	all, err := settlements.List(ctx, entities.SettlementFilter{WorkshopID: "w-1"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s-2", all[0].ID)
	assert.NotNil(t, all[0].JobIDs)

	confirmed, err := settlements.Confirm(ctx, "s-1", testNow)
	require.NoError(t, err)
	assert.True(t, confirmed.ConfirmedByOwner)

	later := testNow.Add(time.Hour)
	reconfirmed, err := settlements.Confirm(ctx, "s-1", later)
	require.NoError(t, err)
	require.NotNil(t, reconfirmed.ConfirmationDate)
	assert.True(t, reconfirmed.ConfirmationDate.Equal(later))

	_, err = settlements.Confirm(ctx, "s-9", testNow)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	yes := true
	done, err := settlements.List(ctx, entities.SettlementFilter{WorkshopID: "w-1", Confirmed: &yes})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "s-1", done[0].ID)

	_, err = settlements.List(ctx, entities.SettlementFilter{})
	assert.ErrorIs(t, err, interfaces.ErrUnboundedQuery)
}
