package services

import (
	"context"
	"errors"

	"greenhouse-sync/internal/config"
	"greenhouse-sync/internal/greenhouse"
)

// ErrAPIKeyMissing means application submission was attempted without a
// Harvest API key configured. Callers answer 400 and never contact the
// upstream API.
var ErrAPIKeyMissing = errors.New("harvest api key not configured")

// applicationAPI is the slice of the Greenhouse client submissions need.
type applicationAPI interface {
	SubmitApplication(ctx context.Context, apiKey string, jobID int64, fields map[string]any) (*greenhouse.ApplicationResult, error)
}

// ApplicationService forwards candidate applications to the Harvest API.
// It is a pass-through on purpose: whatever status and body the upstream
// answers is handed back verbatim, success or not, with no retries.
type ApplicationService struct {
	cfg config.Config
	api applicationAPI
}

func NewApplicationService(cfg config.Config, api applicationAPI) *ApplicationService {
	return &ApplicationService{cfg: cfg, api: api}
}

// Submit sends one application upstream. The form fields travel as-is;
// only the job identifier is added alongside them.
func (s *ApplicationService) Submit(ctx context.Context, jobID int64, fields map[string]any) (*greenhouse.ApplicationResult, error) {
	if s.cfg.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}
	return s.api.SubmitApplication(ctx, s.cfg.APIKey, jobID, fields)
}
