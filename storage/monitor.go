package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

// Monitor tails the record change log and reports writes made by other
// processes. It is the database-backend counterpart of a storage-change
// event: poll, pick up unseen change rows, skip our own writer id, emit the
// current value for each changed key.
type Monitor struct {
	DB       *gorm.DB
	Interval time.Duration

	writer   string
	load     func(ctx context.Context, key string) ([]byte, error)
	cursor   uint
	stopChan chan struct{}
}

func NewMonitor(db *gorm.DB, writer string, load func(ctx context.Context, key string) ([]byte, error)) *Monitor {
	return &Monitor{
		DB:       db,
		Interval: 500 * time.Millisecond,
		writer:   writer,
		load:     load,
		stopChan: make(chan struct{}),
	}
}

// Start begins polling. Changes logged before Start are skipped; the cursor
// begins at the current tail of the log.
func (m *Monitor) Start(ctx context.Context) (<-chan Change, error) {
	var last RecordChange
	err := m.DB.WithContext(ctx).Order("id DESC").First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	m.cursor = last.ID

	out := make(chan Change)
	go func() {
		defer close(out)
		ticker := time.NewTicker(m.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.checkChanges(ctx, out)
			case <-ctx.Done():
				return
			case <-m.stopChan:
				return
			}
		}
	}()
	return out, nil
}

func (m *Monitor) Stop() {
	select {
	case <-m.stopChan:
	default:
		close(m.stopChan)
	}
}

func (m *Monitor) checkChanges(ctx context.Context, out chan<- Change) {
	var changes []RecordChange
	if err := m.DB.WithContext(ctx).
		Where("id > ?", m.cursor).
		Order("id ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		utils.ErrorLogger.Printf("Error fetching record changes: %v", err)
		return
	}

	// A burst of writes to one key collapses to a single emit of the latest
	// value; the consumer replaces the whole collection anyway.
	seen := make(map[string]bool)
	for _, change := range changes {
		m.cursor = change.ID
		if change.Writer == m.writer || seen[change.Key] {
			continue
		}
		seen[change.Key] = true

		value, err := m.load(ctx, change.Key)
		if err != nil {
			continue
		}
		select {
		case out <- Change{Key: change.Key, Value: value}:
		case <-ctx.Done():
			return
		case <-m.stopChan:
			return
		}
	}
}
