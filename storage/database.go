package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

// Record is one durable key/JSON-document pair.
type Record struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	Writer    string    `gorm:"type:varchar(36);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// RecordChange is an append-only log row written alongside every Set. The
// monitor tails it to detect writes from other processes.
type RecordChange struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"type:varchar(64);not null;index"`
	Writer    string    `gorm:"type:varchar(36);not null"`
	ChangedAt time.Time `gorm:"not null"`
}

// OpenDatabase opens the relational store by driver name (sqlite or mysql).
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DatabaseBackend stores records in a relational table and watches for
// external writes by polling the change log.
type DatabaseBackend struct {
	db      *gorm.DB
	writer  string
	monitor *Monitor
}

func NewDatabaseBackend(db *gorm.DB) (*DatabaseBackend, error) {
	if err := db.AutoMigrate(&Record{}, &RecordChange{}); err != nil {
		return nil, err
	}
	b := &DatabaseBackend{
		db:     db,
		writer: uuid.NewString(),
	}
	b.monitor = NewMonitor(db, b.writer, b.load)
	return b, nil
}

// DB exposes the underlying connection for migrations of other tables.
func (b *DatabaseBackend) DB() *gorm.DB {
	return b.db
}

// SetPollInterval tunes how often the monitor checks for external writes.
// Call before Watch.
func (b *DatabaseBackend) SetPollInterval(interval time.Duration) {
	if interval > 0 {
		b.monitor.Interval = interval
	}
}

func (b *DatabaseBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var record Record
	if err := b.db.WithContext(ctx).First(&record, "`key` = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(record.Value), nil
}

func (b *DatabaseBackend) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now()
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := Record{
			Key:       key,
			Value:     string(value),
			Writer:    b.writer,
			UpdatedAt: now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "writer", "updated_at"}),
		}).Create(&record).Error; err != nil {
			return err
		}
		return tx.Create(&RecordChange{
			Key:       key,
			Writer:    b.writer,
			ChangedAt: now,
		}).Error
	})
}

func (b *DatabaseBackend) Watch(ctx context.Context) (<-chan Change, error) {
	return b.monitor.Start(ctx)
}

func (b *DatabaseBackend) Close() error {
	b.monitor.Stop()
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// load fetches the current value for a changed key on behalf of the monitor.
func (b *DatabaseBackend) load(ctx context.Context, key string) ([]byte, error) {
	value, err := b.Get(ctx, key)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching changed record %s: %v", key, err)
		return nil, err
	}
	return value, nil
}
