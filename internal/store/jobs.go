package store

import (
	"context"

	"greenhouse-sync/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobStore is the jobs collection of the host document store. The store is
// the system of record only between syncs — the external board API is
// authoritative, so every operation here is a plain find/create/delete with
// an upsert on top for the no-empty-window cache replace.
type JobStore struct {
	db *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{db: db}
}

// List returns every cached job document, ordered by job identifier for a
// stable response shape.
func (s *JobStore) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Order("job_id asc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Create inserts a new job document. A duplicate identifier surfaces as
// gorm.ErrDuplicatedKey.
func (s *JobStore) Create(ctx context.Context, job *models.Job) error {
	return s.db.WithContext(ctx).Create(job).Error
}

// Upsert writes the document for job.JobID, replacing every mirrored column
// when a document with that identifier already exists.
func (s *JobStore) Upsert(ctx context.Context, job *models.Job) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}},
		UpdateAll: true,
	}).Create(job).Error
}

// DeleteStale removes every cached job whose identifier is not in keep and
// returns how many documents went away. An empty keep set clears the cache.
func (s *JobStore) DeleteStale(ctx context.Context, keep []int64) (int64, error) {
	if len(keep) == 0 {
		return s.DeleteAll(ctx)
	}
	res := s.db.WithContext(ctx).Where("job_id NOT IN ?", keep).Delete(&models.Job{})
	return res.RowsAffected, res.Error
}

// DeleteAll clears the cache and reports the exact number of documents
// removed. Calling it on an empty cache reports zero.
func (s *JobStore) DeleteAll(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Job{})
	return res.RowsAffected, res.Error
}
