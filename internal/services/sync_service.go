package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"greenhouse-sync/internal/config"
	"greenhouse-sync/internal/greenhouse"
	"greenhouse-sync/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// ErrTokenMissing means no board token is configured. That is a
// configuration error, answered with 400 and never retried automatically.
var ErrTokenMissing = errors.New("board token not configured")

// boardAPI is the slice of the Greenhouse client the sync needs.
type boardAPI interface {
	ListOffices(ctx context.Context, token string) ([]greenhouse.Office, error)
	GetJobDetail(ctx context.Context, token string, jobID int64) (*greenhouse.JobDetail, error)
}

// jobCache is the slice of the document store the sync needs.
type jobCache interface {
	List(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Upsert(ctx context.Context, job *models.Job) error
	DeleteStale(ctx context.Context, keep []int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// SyncService owns the job-synchronization and caching routine: fetch the
// office tree, flatten and dedupe it, enrich each job with a detail fetch,
// and replace the cached document set. Two concurrent syncs race benignly;
// last writer wins and the next run converges, because the board API is the
// source of truth.
type SyncService struct {
	cfg   config.Config
	board boardAPI
	cache jobCache
}

func NewSyncService(cfg config.Config, board boardAPI, cache jobCache) *SyncService {
	return &SyncService{cfg: cfg, board: board, cache: cache}
}

// JobsWithCache returns the cached jobs when they are still fresh, and runs
// a full sync otherwise. force skips the freshness check entirely
// (refresh=true). The second return value reports whether a sync ran.
func (s *SyncService) JobsWithCache(ctx context.Context, force bool) ([]models.Job, bool, error) {
	if s.cfg.URLToken == "" {
		return nil, false, ErrTokenMissing
	}

	// Caching disabled: every read fetches fresh, nothing is persisted.
	if s.cfg.CachingDisabled() {
		jobs, err := s.Sync(ctx)
		return jobs, true, err
	}

	if !force {
		cached, err := s.cache.List(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("read cache: %w", err)
		}
		if len(cached) > 0 && time.Since(newestUpdatedAt(cached)) <= s.cfg.CacheExpiry {
			return cached, false, nil
		}
	}

	jobs, err := s.Sync(ctx)
	return jobs, true, err
}

// Sync runs the full routine once and returns the resulting job documents.
// Partial enrichment failures skip the affected job and keep going; only a
// failure of the offices fetch itself aborts the run.
func (s *SyncService) Sync(ctx context.Context) ([]models.Job, error) {
	if s.cfg.URLToken == "" {
		return nil, ErrTokenMissing
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.SyncTimeout)
	defer cancel()

	// Short run ID so one sync's log lines can be followed end to end.
	logPrefix := fmt.Sprintf("[sync %s]", uuid.NewString()[:8])
	started := time.Now()
	log.Printf("%s 🔄 starting board sync", logPrefix)

	// 1. Fetch the office → department → job tree.
	offices, err := s.board.ListOffices(ctx, s.cfg.URLToken)
	if err != nil {
		log.Printf("%s ❌ offices fetch failed: %v", logPrefix, err)
		return nil, err
	}

	// 2. Flatten and dedupe by job identifier (first occurrence wins).
	postings := greenhouse.FlattenOffices(offices)
	s.debugf("%s flattened %d offices into %d distinct jobs", logPrefix, len(offices), len(postings))

	// 3. Enrich every job with its detail fetch, concurrently.
	jobs := s.enrichPostings(ctx, logPrefix, postings)

	// 4. Replace the cache (upsert by identifier, then prune missing ones).
	if s.cfg.CachingDisabled() {
		sort.Slice(jobs, func(i, j int) bool { return jobs[i].JobID < jobs[j].JobID })
		log.Printf("%s ✅ synced %d jobs in %v (caching disabled, nothing persisted)", logPrefix, len(jobs), time.Since(started).Round(time.Millisecond))
		return jobs, nil
	}

	keep := make([]int64, 0, len(jobs))
	for i := range jobs {
		if err := s.cache.Upsert(ctx, &jobs[i]); err != nil {
			return nil, fmt.Errorf("upsert job %d: %w", jobs[i].JobID, err)
		}
		keep = append(keep, jobs[i].JobID)
	}
	removed, err := s.cache.DeleteStale(ctx, keep)
	if err != nil {
		return nil, fmt.Errorf("prune stale jobs: %w", err)
	}

	fresh, err := s.cache.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cache after sync: %w", err)
	}
	log.Printf("%s ✅ synced %d jobs (%d pruned) in %v", logPrefix, len(fresh), removed, time.Since(started).Round(time.Millisecond))
	return fresh, nil
}

// enrichPostings fans out the per-job detail fetches, bounded by the
// configured concurrency. A failed fetch skips that job; the rest of the
// batch still syncs.
func (s *SyncService) enrichPostings(ctx context.Context, logPrefix string, postings []greenhouse.Posting) []models.Job {
	results := make([]*models.Job, len(postings))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.EnrichConcurrency)
	for i, posting := range postings {
		i, posting := i, posting
		g.Go(func() error {
			detail, err := s.board.GetJobDetail(ctx, s.cfg.URLToken, posting.Job.ID)
			if err != nil {
				log.Printf("%s ⚠️ skipping job %d (%q): %v", logPrefix, posting.Job.ID, posting.Job.Title, err)
				return nil
			}
			job := jobFromDetail(detail, &posting)
			results[i] = &job
			return nil
		})
	}
	// Enrichment errors are swallowed above, so Wait only joins the group.
	g.Wait()

	jobs := make([]models.Job, 0, len(postings))
	for _, r := range results {
		if r != nil {
			jobs = append(jobs, *r)
		}
	}
	return jobs
}

// ClearCache deletes every cached job document and reports the exact count
// removed. With caching disabled nothing is ever persisted, so this is the
// documented degenerate mode: a no-op reporting zero.
func (s *SyncService) ClearCache(ctx context.Context) (int64, error) {
	return s.cache.DeleteAll(ctx)
}

// DebugReport lets an operator confirm a job identifier exists upstream
// before configuring it by hand. It re-runs the flatten step only, with no
// detail enrichment and no cache mutation.
type DebugReport struct {
	AvailableJobIDs []int64    `json:"availableJobIds"`
	JobDetails      []DebugJob `json:"jobDetails"`
	TotalJobs       int        `json:"totalJobs"`
}

type DebugJob struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Office     string `json:"office"`
	Location   string `json:"location"`
	UpdatedAt  string `json:"updatedAt"`
}

// DebugSnapshot fetches and flattens the board tree without touching the
// cache or the detail endpoint.
func (s *SyncService) DebugSnapshot(ctx context.Context) (*DebugReport, error) {
	if s.cfg.URLToken == "" {
		return nil, ErrTokenMissing
	}
	offices, err := s.board.ListOffices(ctx, s.cfg.URLToken)
	if err != nil {
		return nil, err
	}

	postings := greenhouse.FlattenOffices(offices)
	report := &DebugReport{
		AvailableJobIDs: make([]int64, 0, len(postings)),
		JobDetails:      make([]DebugJob, 0, len(postings)),
		TotalJobs:       len(postings),
	}
	for _, p := range postings {
		report.AvailableJobIDs = append(report.AvailableJobIDs, p.Job.ID)
		report.JobDetails = append(report.JobDetails, DebugJob{
			ID:         p.Job.ID,
			Title:      p.Job.Title,
			Department: p.DepartmentName,
			Office:     p.OfficeName,
			Location:   p.Job.Location.Name,
			UpdatedAt:  p.Job.UpdatedAt,
		})
	}
	return report, nil
}

// ValidateJobID confirms a job identifier exists upstream. The detail
// fetch is board-scoped, so a 404 there is the authoritative "no such job
// on this board". The office tree is fetched only to attribute the job to
// its office/department pair; a job missing from the tree (draft, single-
// job config) is still valid and comes back with a nil posting.
func (s *SyncService) ValidateJobID(ctx context.Context, jobID int64) (*greenhouse.JobDetail, *greenhouse.Posting, error) {
	if s.cfg.URLToken == "" {
		return nil, nil, ErrTokenMissing
	}
	detail, err := s.board.GetJobDetail(ctx, s.cfg.URLToken, jobID)
	if err != nil {
		return nil, nil, err
	}
	offices, err := s.board.ListOffices(ctx, s.cfg.URLToken)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range greenhouse.FlattenOffices(offices) {
		if p.Job.ID == jobID {
			return detail, &p, nil
		}
	}
	return detail, nil, nil
}

// PinJob validates a job identifier upstream and creates its cached
// document by hand, the operator flow the debug endpoint exists for.
// A duplicate identifier surfaces as gorm.ErrDuplicatedKey.
func (s *SyncService) PinJob(ctx context.Context, jobID int64) (*models.Job, error) {
	detail, posting, err := s.ValidateJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	job := jobFromDetail(detail, posting)
	if err := s.cache.Create(ctx, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// StartWatcher launches the optional background sync loop: run once
// immediately, then on every tick. Interval 0 leaves it off; syncs then
// happen only on demand via the endpoints.
func (s *SyncService) StartWatcher() {
	if s.cfg.SyncInterval <= 0 {
		return
	}
	log.Printf("⏰ Background sync watcher enabled (every %v)", s.cfg.SyncInterval)

	ticker := time.NewTicker(s.cfg.SyncInterval)

	go s.watcherRun()
	go func() {
		for range ticker.C {
			s.watcherRun()
		}
	}()
}

func (s *SyncService) watcherRun() {
	if _, err := s.Sync(context.Background()); err != nil {
		log.Printf("❌ Background sync failed: %v", err)
	}
}

func (s *SyncService) debugf(format string, args ...any) {
	if s.cfg.Debug {
		log.Printf(format, args...)
	}
}

// jobFromDetail maps the upstream wire fields onto a cached document.
// Attribution comes from the flattened tree when available; a manual pin
// falls back to the first element of the detail's own department/office
// lists (the source models one-to-many, the cache one-to-one).
func jobFromDetail(detail *greenhouse.JobDetail, posting *greenhouse.Posting) models.Job {
	job := models.Job{
		JobID:           detail.ID,
		Title:           detail.Title,
		Content:         detail.Content,
		Location:        detail.Location.Name,
		AbsoluteURL:     detail.AbsoluteURL,
		CompanyName:     detail.CompanyName,
		RequisitionID:   detail.RequisitionID,
		InternalJobID:   detail.InternalJobID,
		PublishedAt:     greenhouse.ParseTime(detail.FirstPublished),
		SourceUpdatedAt: greenhouse.ParseTime(detail.UpdatedAt),
		Questions:       datatypes.JSON(detail.Questions),
	}
	if posting != nil {
		job.DepartmentID = posting.DepartmentID
		job.Department = posting.DepartmentName
		job.OfficeID = posting.OfficeID
		job.Office = posting.OfficeName
		return job
	}
	if len(detail.Departments) > 0 {
		job.DepartmentID = detail.Departments[0].ID
		job.Department = detail.Departments[0].Name
	}
	if len(detail.Offices) > 0 {
		job.OfficeID = detail.Offices[0].ID
		job.Office = detail.Offices[0].Name
	}
	return job
}

func newestUpdatedAt(jobs []models.Job) time.Time {
	var newest time.Time
	for _, j := range jobs {
		if j.UpdatedAt.After(newest) {
			newest = j.UpdatedAt
		}
	}
	return newest
}
