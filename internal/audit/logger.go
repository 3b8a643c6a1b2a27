package audit

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/store-reservations/internal/models"
)

// Sink persists audit events.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

// Reader lists the most recent audit entries, newest first.
type Reader interface {
	Recent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

func toLog(ev Event) models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: ev.At,
	}
}

// --------------------------------------------------
// GORM
// --------------------------------------------------

type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, ev Event) error {
	log := toLog(ev)
	return s.db.WithContext(ctx).Create(&log).Error
}

func (s *GormSink) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// --------------------------------------------------
// Memory (ring buffer, also echoed to zap)
// --------------------------------------------------

type MemorySink struct {
	mu     sync.Mutex
	size   int
	nextID uint
	logs   []models.AuditLog
}

func NewMemorySink(size int) *MemorySink {
	if size <= 0 {
		size = 500
	}
	return &MemorySink{size: size}
}

func (s *MemorySink) Write(_ context.Context, ev Event) error {
	log := toLog(ev)

	s.mu.Lock()
	s.nextID++
	log.ID = s.nextID
	s.logs = append(s.logs, log)
	if len(s.logs) > s.size {
		s.logs = s.logs[len(s.logs)-s.size:]
	}
	s.mu.Unlock()

	zap.L().Info("audit",
		zap.String("action", log.Action),
		zap.String("entity", log.Entity),
		zap.String("entity_id", log.EntityID),
		zap.String("metadata", log.Metadata),
	)
	return nil
}

func (s *MemorySink) Recent(_ context.Context, limit int) ([]models.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.logs) {
		limit = len(s.logs)
	}
	out := make([]models.AuditLog, 0, limit)
	for i := len(s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.logs[i])
	}
	return out, nil
}
