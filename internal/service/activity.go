package service

import (
	"context"
	"fmt"
	"time"

	"docdash/internal/filter"
	"docdash/internal/model"
	"docdash/internal/repository"
)

// ActivityListResult is the activity log panel's view of the log.
type ActivityListResult struct {
	Items []model.ActivityLogEntry `json:"data"`
	Total int                      `json:"total"`
	Empty bool                     `json:"empty"`
	// Filtered is set when any criterion is active.
	Filtered bool `json:"filtered"`
}

// ActivityService reads the activity log.
type ActivityService interface {
	List(ctx context.Context, c filter.ActivityCriteria) (*ActivityListResult, error)
}

type activityService struct {
	repo repository.ActivityRepository
	loc  *time.Location
}

// NewActivityService compares selected dates in loc.
func NewActivityService(repo repository.ActivityRepository, loc *time.Location) ActivityService {
	return &activityService{repo: repo, loc: loc}
}

func (s *activityService) List(ctx context.Context, c filter.ActivityCriteria) (*ActivityListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	items := filter.Activity(all, c, s.loc)
	return &ActivityListResult{
		Items:    items,
		Total:    len(all),
		Empty:    len(items) == 0,
		Filtered: !c.IsZero(),
	}, nil
}
