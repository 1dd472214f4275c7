package store

import (
	"context"
	"errors"

	"greenhouse-sync/internal/models"

	"gorm.io/gorm"
)

// SettingsStore is the settings collection: a single persisted document
// acting as the lowest-priority configuration source.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the settings document, or nil when none has been written yet.
func (s *SettingsStore) Get(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.WithContext(ctx).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// EnsureDefault writes an empty settings document once at initialization if
// absent, and returns whichever document ends up persisted.
func (s *SettingsStore) EnsureDefault(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.WithContext(ctx).FirstOrCreate(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
