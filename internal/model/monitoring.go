package model

import (
	"fmt"
	"math"
	"time"
)

// ActivityPoint is one bar of the stacked document activity chart.
type ActivityPoint struct {
	Name      string `json:"name"`
	Uploads   int    `json:"uploads"`
	Downloads int    `json:"downloads"`
	Views     int    `json:"views"`
	Deletes   int    `json:"deletes"`
}

// Total sums every operation in the point.
func (p ActivityPoint) Total() int {
	return p.Uploads + p.Downloads + p.Views + p.Deletes
}

// StoragePoint is one sample of the storage usage line, in GB.
type StoragePoint struct {
	Name string  `json:"name"`
	Used float64 `json:"used"`
}

// TypeShare is one slice of the document type pie.
type TypeShare struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
	Label   string  `json:"label"`
}

// Trend is the direction of a stat card's change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// StatCard is a headline number on the monitoring dashboard.
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change int    `json:"change"`
	Trend  Trend  `json:"trend"`
	Note   string `json:"note"`
}

// RecentActivity is an entry of the "recent activity" feed.
type RecentActivity struct {
	DocumentName string         `json:"document_name"`
	Action       ActivityAction `json:"action"`
	User         string         `json:"user"`
	At           time.Time      `json:"at"`
	Ago          string         `json:"ago"`
}

// WithShares fills Percent and Label of each slice relative to the total value.
func WithShares(in []TypeShare) []TypeShare {
	total := 0
	for _, s := range in {
		total += s.Value
	}
	out := make([]TypeShare, len(in))
	for i, s := range in {
		if total > 0 {
			s.Percent = float64(s.Value) / float64(total)
		}
		s.Label = fmt.Sprintf("%s %d%%", s.Name, int(math.Round(s.Percent*100)))
		out[i] = s
	}
	return out
}
