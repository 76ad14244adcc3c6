package filter

import (
	"time"

	"docdash/internal/model"
)

// DocumentCriteria is the search box of the document list.
type DocumentCriteria struct {
	Query string `json:"query"`
}

// IsZero reports whether no criterion is active.
func (c DocumentCriteria) IsZero() bool { return c.Query == "" }

// Clear resets every criterion.
func (c DocumentCriteria) Clear() DocumentCriteria { return DocumentCriteria{} }

// Match reports whether the document name or any tag contains the query.
func (c DocumentCriteria) Match(d model.Document) bool {
	fields := make([]string, 0, len(d.Tags)+1)
	fields = append(fields, d.Name)
	fields = append(fields, d.Tags...)
	return Text(c.Query, fields...)
}

// Documents filters docs by c.
func Documents(docs []model.Document, c DocumentCriteria) []model.Document {
	return Apply(docs, c.Match)
}

// ActivityCriteria combines the search box, action menu and date picker of the activity log.
type ActivityCriteria struct {
	Query  string     `json:"query"`
	Action string     `json:"action"`
	Date   *time.Time `json:"date,omitempty"`
}

// IsZero reports whether no criterion is active.
func (c ActivityCriteria) IsZero() bool {
	return c.Query == "" && (c.Action == "" || c.Action == All) && c.Date == nil
}

// Clear resets every criterion.
func (c ActivityCriteria) Clear() ActivityCriteria { return ActivityCriteria{Action: All} }

// Activity filters logs by c, comparing dates in loc.
func Activity(logs []model.ActivityLogEntry, c ActivityCriteria, loc *time.Location) []model.ActivityLogEntry {
	return Apply(logs,
		func(l model.ActivityLogEntry) bool { return Text(c.Query, l.DocumentName, l.User.Name) },
		func(l model.ActivityLogEntry) bool { return Category(c.Action, l.Action) },
		func(l model.ActivityLogEntry) bool { return SameDay(c.Date, l.Timestamp, loc) },
	)
}

// SystemLogCriteria narrows the system log by level and message text.
type SystemLogCriteria struct {
	Query string `json:"query"`
	Level string `json:"level"`
}

// IsZero reports whether no criterion is active.
func (c SystemLogCriteria) IsZero() bool {
	return c.Query == "" && (c.Level == "" || c.Level == All)
}

// Clear resets every criterion.
func (c SystemLogCriteria) Clear() SystemLogCriteria { return SystemLogCriteria{Level: All} }

// SystemLogs filters logs by c.
func SystemLogs(logs []model.SystemLogEntry, c SystemLogCriteria) []model.SystemLogEntry {
	return Apply(logs,
		func(l model.SystemLogEntry) bool { return Text(c.Query, l.Message) },
		func(l model.SystemLogEntry) bool { return Category(c.Level, l.Level) },
	)
}
