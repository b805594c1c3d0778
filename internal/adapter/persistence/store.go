// Package persistence wires the configured store backend behind the
// repository ports.
package persistence

import (
	"context"
	"fmt"

	"workshop_jobs/internal/adapter/persistence/repository"
	"workshop_jobs/internal/adapter/persistence/sqlstore"
	"workshop_jobs/internal/infrastructure/config"
	"workshop_jobs/internal/infrastructure/database"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Store bundles one implementation of every repository port.
type Store struct {
	Users       interfaces.IUserRepository
	Workshops   interfaces.IWorkshopRepository
	InviteCodes interfaces.IInviteCodeRepository
	Managers    interfaces.IManagerRepository
	Jobs        interfaces.IJobRepository
	Payments    interfaces.IPaymentRepository
	Settlements interfaces.ISettlementRepository

	close func() error
}

// Close releases the backend connection.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		return openDynamo(ctx, cfg, log)
	case config.StoreSQL:
		db, err := database.ConnectSQL(cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		if err := sqlstore.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return NewSQLStore(db)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func openDynamo(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*Store, error) {
	client, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tables := repository.NewTables(cfg.TablePrefix)
	if cfg.CreateTables {
		created, err := repository.EnsureTables(ctx, client, tables)
		if err != nil {
			return nil, fmt.Errorf("create tables: %w", err)
		}
		if len(created) > 0 {
			log.WithField("tables", created).Info("[database] dynamodb tables created")
		}
	}
	return NewDynamoStore(client, tables), nil
}

func NewDynamoStore(ddb repository.DynamoAPI, tables repository.Tables) *Store {
	return &Store{
		Users:       repository.NewUserDynamoRepository(ddb, tables),
		Workshops:   repository.NewWorkshopDynamoRepository(ddb, tables),
		InviteCodes: repository.NewInviteCodeDynamoRepository(ddb, tables),
		Managers:    repository.NewManagerDynamoRepository(ddb, tables),
		Jobs:        repository.NewJobDynamoRepository(ddb, tables),
		Payments:    repository.NewPaymentDynamoRepository(ddb, tables),
		Settlements: repository.NewSettlementDynamoRepository(ddb, tables),
	}
}

func NewSQLStore(db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &Store{
		Users:       sqlstore.NewUserStore(db),
		Workshops:   sqlstore.NewWorkshopStore(db),
		InviteCodes: sqlstore.NewInviteCodeStore(db),
		Managers:    sqlstore.NewManagerStore(db),
		Jobs:        sqlstore.NewJobStore(db),
		Payments:    sqlstore.NewPaymentStore(db),
		Settlements: sqlstore.NewSettlementStore(db),
		close:       sqlDB.Close,
	}, nil
}
