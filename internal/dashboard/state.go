// Package dashboard implements the view controller of the document dashboard.
package dashboard

import (
	"fmt"

	"docdash/internal/model"
)

// View is a top-level section of the dashboard.
type View string

const (
	ViewDocuments  View = "documents"
	ViewActivity   View = "activity"
	ViewMonitoring View = "monitoring"
	ViewSettings   View = "settings"
)

// Views lists the sections in sidebar order.
var Views = []View{ViewDocuments, ViewActivity, ViewMonitoring, ViewSettings}

// ParseView rejects unknown view names.
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// State is the composed dashboard state. Transitions return a new State and never modify the receiver.
type State struct {
	View        View            `json:"view"`
	Selected    *model.Document `json:"selected,omitempty"`
	UploadOpen  bool            `json:"upload_open"`
	PreviewOpen bool            `json:"preview_open"`
}

// Initial is the state of a fresh dashboard.
func Initial() State {
	return State{View: ViewDocuments}
}

// SwitchView activates v. Selection and the preview dialog do not survive a view change.
func (s State) SwitchView(v View) State {
	s.View = v
	s.Selected = nil
	s.PreviewOpen = false
	return s
}

// SelectDocument records doc as the selection.
func (s State) SelectDocument(doc model.Document) State {
	s.Selected = &doc
	return s
}

// OpenPreview selects doc and raises the preview dialog.
func (s State) OpenPreview(doc model.Document) State {
	s = s.SelectDocument(doc)
	s.PreviewOpen = true
	return s
}

// ClosePreview lowers the preview dialog. The selection is cleared unless keepSelection is set.
func (s State) ClosePreview(keepSelection bool) State {
	s.PreviewOpen = false
	if !keepSelection {
		s.Selected = nil
	}
	return s
}

func (s State) OpenUpload() State {
	s.UploadOpen = true
	return s
}

func (s State) CloseUpload() State {
	s.UploadOpen = false
	return s
}

// Deleted drops the selection when it is the document with id.
func (s State) Deleted(id string) State {
	if s.Selected != nil && s.Selected.ID == id {
		s.Selected = nil
		s.PreviewOpen = false
	}
	return s
}

// PreviewVisible reports whether the preview dialog is shown.
func (s State) PreviewVisible() bool {
	return s.PreviewOpen && s.Selected != nil
}
