package model

import "time"

// ActivityAction is the kind of operation recorded in the activity log.
type ActivityAction string

const (
	ActionUpload   ActivityAction = "upload"
	ActionDownload ActivityAction = "download"
	ActionDelete   ActivityAction = "delete"
	ActionView     ActivityAction = "view"
	ActionComment  ActivityAction = "comment"
)

// ActivityActions lists the known actions in menu order.
var ActivityActions = []ActivityAction{ActionUpload, ActionDownload, ActionDelete, ActionView, ActionComment}

// Valid reports whether a is one of the known actions.
func (a ActivityAction) Valid() bool {
	for _, known := range ActivityActions {
		if a == known {
			return true
		}
	}
	return false
}

// PastTense renders the action as it reads in "<user> <verb> <document>".
func (a ActivityAction) PastTense() string {
	switch a {
	case ActionUpload:
		return "uploaded"
	case ActionDownload:
		return "downloaded"
	case ActionDelete:
		return "deleted"
	case ActionView:
		return "viewed"
	case ActionComment:
		return "commented on"
	default:
		return string(a)
	}
}

// ActivityLogEntry is an immutable record of a user action on a document.
type ActivityLogEntry struct {
	ID           string         `json:"id"`
	User         Author         `json:"user"`
	Action       ActivityAction `json:"action"`
	DocumentName string         `json:"document_name"`
	Timestamp    time.Time      `json:"timestamp"`
}
