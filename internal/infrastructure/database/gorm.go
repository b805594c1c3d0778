package database

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// ConnectSQL opens the gorm database. postgres:// and postgresql:// DSNs
// select PostgreSQL; anything else is a SQLite DSN served by the pure Go
// driver.
func ConnectSQL(dsn string, log logrus.FieldLogger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	if IsPostgresDSN(dsn) {
		log.Info("[database] connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), gormCfg)
	}

	log.WithField("dsn", dsn).Info("[database] using SQLite")
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		gormCfg,
	)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
