package store

import (
	"fmt"
	"time"

	"afspraaksms/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps sent-reminder records in a relational table with a
// unique index on (event_id, reminder_label).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an already-initialized GORM connection. The
// SentReminder table is migrated by the database package at startup.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) HasSent(eventID string, label models.Label) (bool, error) {
	var count int64
	err := s.db.Model(&models.SentReminder{}).
		Where("event_id = ? AND reminder_label = ?", eventID, label).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query sent reminders: %w", err)
	}
	return count > 0, nil
}

// RecordSent inserts a record unless one already exists for the pair.
// ON CONFLICT DO NOTHING on the unique index makes concurrent passes
// safe: whichever insert lands first wins, the other is a no-op.
func (s *GormStore) RecordSent(eventID string, label models.Label, sentAt time.Time) error {
	reminder := models.SentReminder{
		EventID:       eventID,
		ReminderLabel: label,
		SentAt:        sentAt,
	}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reminder).Error
	if err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
