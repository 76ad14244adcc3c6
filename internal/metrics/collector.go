// Package metrics exports the entity store as Prometheus gauges.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"docdash/internal/model"
	"docdash/internal/repository"
)

const (
	namespace      = "docdash"
	collectTimeout = 2 * time.Second
)

// DashboardCollector reads collection sizes on every scrape.
type DashboardCollector struct {
	repos    repository.Set
	sessions func() int
	log      *zap.Logger

	documents  *prometheus.Desc
	comments   *prometheus.Desc
	activity   *prometheus.Desc
	systemLogs *prometheus.Desc
	active     *prometheus.Desc
}

// NewDashboardCollector builds a collector over repos. sessions may be nil.
func NewDashboardCollector(repos repository.Set, sessions func() int, log *zap.Logger) *DashboardCollector {
	return &DashboardCollector{
		repos:    repos,
		sessions: sessions,
		log:      log.Named("metrics"),
		documents: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "documents"),
			"Number of documents in the store.", nil, nil),
		comments: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "comments"),
			"Number of comments across every document.", nil, nil),
		activity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "activity_entries"),
			"Activity log entries by action.", []string{"action"}, nil),
		systemLogs: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "system_log_entries"),
			"System log entries by level.", []string{"level"}, nil),
		active: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "active_sessions"),
			"Dashboard sessions currently held.", nil, nil),
	}
}

var _ prometheus.Collector = (*DashboardCollector)(nil)

func (c *DashboardCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.documents
	ch <- c.comments
	ch <- c.activity
	ch <- c.systemLogs
	ch <- c.active
}

// Collect skips a gauge when its repository fails and logs the error.
func (c *DashboardCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	if docs, err := c.repos.Documents.List(ctx); err != nil {
		c.log.Warn("collect documents", zap.Error(err))
	} else {
		ch <- prometheus.MustNewConstMetric(c.documents, prometheus.GaugeValue, float64(len(docs)))
	}

	if n, err := c.repos.Comments.Count(ctx); err != nil {
		c.log.Warn("collect comments", zap.Error(err))
	} else {
		ch <- prometheus.MustNewConstMetric(c.comments, prometheus.GaugeValue, float64(n))
	}

	if logs, err := c.repos.Activity.List(ctx); err != nil {
		c.log.Warn("collect activity", zap.Error(err))
	} else {
		counts := make(map[model.ActivityAction]int, len(model.ActivityActions))
		for _, l := range logs {
			counts[l.Action]++
		}
		for _, a := range model.ActivityActions {
			ch <- prometheus.MustNewConstMetric(c.activity, prometheus.GaugeValue, float64(counts[a]), string(a))
		}
	}

	if logs, err := c.repos.SystemLogs.List(ctx); err != nil {
		c.log.Warn("collect system logs", zap.Error(err))
	} else {
		counts := make(map[model.LogLevel]int, len(model.LogLevels))
		for _, l := range logs {
			counts[l.Level]++
		}
		for _, lvl := range model.LogLevels {
			ch <- prometheus.MustNewConstMetric(c.systemLogs, prometheus.GaugeValue, float64(counts[lvl]), string(lvl))
		}
	}

	if c.sessions != nil {
		ch <- prometheus.MustNewConstMetric(c.active, prometheus.GaugeValue, float64(c.sessions()))
	}
}
