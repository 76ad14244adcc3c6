// Package seed holds the dashboard's built-in data set.
package seed

import (
	"fmt"
	"time"

	"docdash/internal/model"
)

const placeholderAvatar = "/placeholder-user.jpg"

var (
	johnDoe       = model.Author{Name: "John Doe", Avatar: placeholderAvatar, Initials: "JD"}
	janeSmith     = model.Author{Name: "Jane Smith", Avatar: placeholderAvatar, Initials: "JS"}
	mikeJohnson   = model.Author{Name: "Mike Johnson", Avatar: placeholderAvatar, Initials: "MJ"}
	sarahWilliams = model.Author{Name: "Sarah Williams", Avatar: placeholderAvatar, Initials: "SW"}
)

// Documents returns the seeded document list, newest first.
func Documents(loc *time.Location) []model.Document {
	return []model.Document{
		{ID: "doc-1", Name: "Project Proposal.pdf", Type: model.TypePDF, Size: "2.4 MB", UploadedBy: "John Doe", UploadedAt: at("2023-05-15T10:30:00", loc), Tags: []string{"proposal", "project"}},
		{ID: "doc-2", Name: "Financial Report Q2.xlsx", Type: model.TypeExcel, Size: "1.8 MB", UploadedBy: "Jane Smith", UploadedAt: at("2023-05-14T14:45:00", loc), Tags: []string{"financial", "report"}},
		{ID: "doc-3", Name: "Meeting Minutes.docx", Type: model.TypeWord, Size: "0.5 MB", UploadedBy: "Mike Johnson", UploadedAt: at("2023-05-13T09:15:00", loc), Tags: []string{"meeting", "minutes"}},
		{ID: "doc-4", Name: "Product Roadmap.pptx", Type: model.TypePowerPoint, Size: "3.2 MB", UploadedBy: "Sarah Williams", UploadedAt: at("2023-05-12T16:20:00", loc), Tags: []string{"product", "roadmap"}},
		{ID: "doc-5", Name: "User Research.pdf", Type: model.TypePDF, Size: "4.7 MB", UploadedBy: "John Doe", UploadedAt: at("2023-05-11T11:10:00", loc), Tags: []string{"research", "user"}},
	}
}

// Comments returns the starter thread shown on a document's preview.
func Comments(documentID string, loc *time.Location) []model.Comment {
	return []model.Comment{
		{ID: "comment-1", DocumentID: documentID, Author: johnDoe, Content: "This looks great! I've added some notes on page 2.", Timestamp: at("2023-05-15T14:30:00", loc)},
		{ID: "comment-2", DocumentID: documentID, Author: janeSmith, Content: "Can we update the financial projections in section 3?", Timestamp: at("2023-05-15T15:45:00", loc)},
		{ID: "comment-3", DocumentID: documentID, Author: mikeJohnson, Content: "I've approved this document. Ready for the next steps.", Timestamp: at("2023-05-16T09:15:00", loc)},
	}
}

// ActivityLogs returns the seeded activity log, newest first.
func ActivityLogs(loc *time.Location) []model.ActivityLogEntry {
	return []model.ActivityLogEntry{
		{ID: "log-1", User: johnDoe, Action: model.ActionUpload, DocumentName: "Project Proposal.pdf", Timestamp: at("2023-05-15T10:30:00", loc)},
		{ID: "log-2", User: janeSmith, Action: model.ActionDownload, DocumentName: "Financial Report Q2.xlsx", Timestamp: at("2023-05-14T14:45:00", loc)},
		{ID: "log-3", User: mikeJohnson, Action: model.ActionComment, DocumentName: "Meeting Minutes.docx", Timestamp: at("2023-05-13T09:15:00", loc)},
		{ID: "log-4", User: sarahWilliams, Action: model.ActionView, DocumentName: "Product Roadmap.pptx", Timestamp: at("2023-05-12T16:20:00", loc)},
		{ID: "log-5", User: johnDoe, Action: model.ActionDelete, DocumentName: "Old Contract.pdf", Timestamp: at("2023-05-11T11:10:00", loc)},
	}
}

// SystemLogs returns the seeded system log in chronological order.
func SystemLogs(loc *time.Location) []model.SystemLogEntry {
	return []model.SystemLogEntry{
		{ID: "sys-1", Level: model.LevelInfo, Message: "User john@example.com logged in", Timestamp: at("2023-05-15T10:30:00", loc)},
		{ID: "sys-2", Level: model.LevelInfo, Message: "Document 'Project Proposal.pdf' uploaded", Timestamp: at("2023-05-15T10:35:00", loc)},
		{ID: "sys-3", Level: model.LevelWarning, Message: "Storage usage approaching 80% of quota", Timestamp: at("2023-05-15T11:20:00", loc)},
		{ID: "sys-4", Level: model.LevelError, Message: "Failed to process document 'Large File.pdf' - file too large", Timestamp: at("2023-05-15T12:45:00", loc)},
		{ID: "sys-5", Level: model.LevelInfo, Message: "User jane@example.com logged in", Timestamp: at("2023-05-15T14:10:00", loc)},
	}
}

// ActivitySeries is the weekly stacked activity chart.
func ActivitySeries() []model.ActivityPoint {
	return []model.ActivityPoint{
		{Name: "Mon", Uploads: 4, Downloads: 7, Views: 20, Deletes: 1},
		{Name: "Tue", Uploads: 6, Downloads: 9, Views: 18, Deletes: 2},
		{Name: "Wed", Uploads: 8, Downloads: 12, Views: 22, Deletes: 0},
		{Name: "Thu", Uploads: 7, Downloads: 10, Views: 25, Deletes: 3},
		{Name: "Fri", Uploads: 9, Downloads: 14, Views: 30, Deletes: 1},
		{Name: "Sat", Uploads: 3, Downloads: 5, Views: 10, Deletes: 0},
		{Name: "Sun", Uploads: 2, Downloads: 4, Views: 8, Deletes: 0},
	}
}

// StorageSeries is the monthly storage usage in GB.
func StorageSeries() []model.StoragePoint {
	return []model.StoragePoint{
		{Name: "Jan", Used: 20},
		{Name: "Feb", Used: 35},
		{Name: "Mar", Used: 45},
		{Name: "Apr", Used: 60},
		{Name: "May", Used: 75},
		{Name: "Jun", Used: 90},
		{Name: "Jul", Used: 110},
	}
}

// TypeDistribution is the document type pie before percentages are applied.
func TypeDistribution() []model.TypeShare {
	return []model.TypeShare{
		{Name: string(model.TypePDF), Value: 45},
		{Name: string(model.TypeWord), Value: 25},
		{Name: string(model.TypeExcel), Value: 20},
		{Name: string(model.TypePowerPoint), Value: 10},
	}
}

// StatCards are the headline numbers of the monitoring dashboard.
func StatCards() []model.StatCard {
	return []model.StatCard{
		{Title: "Total Documents", Value: "254", Change: 12, Trend: model.TrendUp, Note: "12% from last month"},
		{Title: "Active Users", Value: "42", Change: 8, Trend: model.TrendUp, Note: "8% from last month"},
		{Title: "Storage Used", Value: "1.2 GB", Change: 15, Trend: model.TrendUp, Note: "15% from last month"},
		{Title: "Avg. Response Time", Value: "320ms", Change: 10, Trend: model.TrendDown, Note: "10% from last month"},
	}
}

// RecentActivity is the feed under the activity chart, relative to now.
func RecentActivity(now time.Time) []model.RecentActivity {
	return []model.RecentActivity{
		{DocumentName: "Project Proposal.pdf", Action: model.ActionUpload, User: "John Doe", At: now.Add(-5 * time.Minute)},
		{DocumentName: "Financial Report Q2.xlsx", Action: model.ActionDownload, User: "Jane Smith", At: now.Add(-15 * time.Minute)},
		{DocumentName: "Meeting Minutes.docx", Action: model.ActionView, User: "Mike Johnson", At: now.Add(-30 * time.Minute)},
		{DocumentName: "Old Contract.pdf", Action: model.ActionDelete, User: "John Doe", At: now.Add(-time.Hour)},
	}
}

func at(s string, loc *time.Location) time.Time {
	t, err := model.ParseTimestamp(s, loc)
	if err != nil {
		panic(fmt.Sprintf("seed: %v", err))
	}
	return t
}
