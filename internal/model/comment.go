package model

import "time"

// Author identifies the person behind a comment or an activity entry.
type Author struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Initials string `json:"initials"`
}

// Comment is a note attached to a document. Comments are appended, never edited.
type Comment struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Author     Author    `json:"user"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}
