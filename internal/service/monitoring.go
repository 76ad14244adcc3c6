package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"docdash/internal/filter"
	"docdash/internal/model"
	"docdash/internal/repository"
	"docdash/internal/seed"
)

// TimeRange is the window selector of the monitoring dashboard.
type TimeRange string

const (
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
)

// ParseTimeRange maps an empty string to Range7d and rejects unknown ranges.
func ParseTimeRange(s string) (TimeRange, error) {
	switch r := TimeRange(s); r {
	case "":
		return Range7d, nil
	case Range24h, Range7d, Range30d, Range90d:
		return r, nil
	default:
		return "", fmt.Errorf("unknown time range %q", s)
	}
}

// Overview is everything the monitoring dashboard draws.
type Overview struct {
	Range        TimeRange              `json:"range"`
	Stats        []model.StatCard       `json:"stats"`
	Activity     []model.ActivityPoint  `json:"activity"`
	Distribution []model.TypeShare      `json:"distribution"`
	Storage      []model.StoragePoint   `json:"storage"`
	Recent       []model.RecentActivity `json:"recent"`
}

// SystemLogListResult is the system log tab of the monitoring dashboard.
type SystemLogListResult struct {
	Items []model.SystemLogEntry `json:"data"`
	Total int                    `json:"total"`
	Empty bool                   `json:"empty"`
}

// MonitoringService serves the monitoring dashboard.
type MonitoringService interface {
	// Overview returns the chart data. Every range currently shows the same series.
	Overview(ctx context.Context, r TimeRange) (*Overview, error)

	SystemLogs(ctx context.Context, c filter.SystemLogCriteria) (*SystemLogListResult, error)
}

type monitoringService struct {
	syslogs repository.SystemLogRepository
	now     func() time.Time
}

// NewMonitoringService constructs a MonitoringService.
func NewMonitoringService(syslogs repository.SystemLogRepository) MonitoringService {
	return &monitoringService{syslogs: syslogs, now: time.Now}
}

func (s *monitoringService) Overview(ctx context.Context, r TimeRange) (*Overview, error) {
	if r == "" {
		r = Range7d
	}
	now := s.now()
	recent := seed.RecentActivity(now)
	for i := range recent {
		recent[i].Ago = humanize.RelTime(recent[i].At, now, "ago", "from now")
	}
	return &Overview{
		Range:        r,
		Stats:        seed.StatCards(),
		Activity:     seed.ActivitySeries(),
		Distribution: model.WithShares(seed.TypeDistribution()),
		Storage:      seed.StorageSeries(),
		Recent:       recent,
	}, nil
}

func (s *monitoringService) SystemLogs(ctx context.Context, c filter.SystemLogCriteria) (*SystemLogListResult, error) {
	all, err := s.syslogs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list system logs: %w", err)
	}
	items := filter.SystemLogs(all, c)
	return &SystemLogListResult{Items: items, Total: len(all), Empty: len(items) == 0}, nil
}
