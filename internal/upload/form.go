// Package upload models the upload dialog: one file handle plus tags and description.
package upload

import (
	"fmt"
	"strings"

	"docdash/internal/model"
)

// FileHandle describes the file picked in the dialog. Its bytes are never read.
type FileHandle struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// SizeLabel renders Size in megabytes with two decimals.
func (f FileHandle) SizeLabel() string {
	return fmt.Sprintf("%.2f MB", float64(f.Size)/1024/1024)
}

// DocumentType infers the document category from the file name.
func (f FileHandle) DocumentType() model.DocumentType {
	return model.TypeFromFilename(f.Name)
}

// DropZone is the visual state of the drop target.
type DropZone string

const (
	ZoneIdle      DropZone = "idle"
	ZoneDragging  DropZone = "dragging"
	ZonePopulated DropZone = "populated"
)

// Submission is the normalized record produced by a successful submit.
type Submission struct {
	File        FileHandle `json:"file"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
}

// Form is the state of the upload dialog. The zero value is a closed, empty form.
type Form struct {
	Open        bool
	File        *FileHandle
	Tags        string
	Description string
	dragging    bool
}

// Browse replaces the held file with f. A nil f leaves the form unchanged.
func (u *Form) Browse(f *FileHandle) {
	if f != nil {
		u.File = f
	}
}

func (u *Form) DragOver()  { u.dragging = true }
func (u *Form) DragLeave() { u.dragging = false }

// Drop ends the drag and replaces the held file with f when f is non-nil.
func (u *Form) Drop(f *FileHandle) {
	u.dragging = false
	u.Browse(f)
}

// RemoveFile drops the held file.
func (u *Form) RemoveFile() { u.File = nil }

func (u *Form) SetTags(s string)        { u.Tags = s }
func (u *Form) SetDescription(s string) { u.Description = s }

// Dragging reports whether a drag is hovering the drop zone.
func (u *Form) Dragging() bool { return u.dragging }

// DropZone reports the drop target state. A held file wins over an ongoing drag.
func (u *Form) DropZone() DropZone {
	switch {
	case u.File != nil:
		return ZonePopulated
	case u.dragging:
		return ZoneDragging
	default:
		return ZoneIdle
	}
}

// CanSubmit reports whether a file is held.
func (u *Form) CanSubmit() bool { return u.File != nil }

// Submit normalizes the form into a Submission, then resets and closes the form.
// Without a file it returns false and changes nothing.
func (u *Form) Submit() (Submission, bool) {
	if u.File == nil {
		return Submission{}, false
	}
	s := Submission{
		File:        *u.File,
		Tags:        SplitTags(u.Tags),
		Description: u.Description,
	}
	*u = Form{}
	return s, true
}

// Reset clears every field and closes the form.
func (u *Form) Reset() { *u = Form{} }

// SplitTags splits s on commas and trims each piece. Empty pieces are kept.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
