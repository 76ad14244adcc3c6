// Package preview holds the state of the document preview dialog and its comment composer.
package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docdash/internal/model"
	"docdash/internal/service"
)

// Tab is a section of the preview dialog.
type Tab string

const (
	TabPreview  Tab = "preview"
	TabDetails  Tab = "details"
	TabComments Tab = "comments"
)

// ParseTab rejects unknown tab names.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabPreview, TabDetails, TabComments:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tab %q", s)
	}
}

// SubmitKey is the key that submits the composer unless shift is held.
const SubmitKey = "Enter"

// Composer is the comment input box.
type Composer struct {
	Input string
}

func (c *Composer) SetInput(s string) { c.Input = s }

// CanSubmit reports whether the input holds more than whitespace.
func (c *Composer) CanSubmit() bool { return strings.TrimSpace(c.Input) != "" }

// KeyPress reports whether key, with the given shift state, requests a submit.
// Shift+Enter inserts a newline instead.
func (c *Composer) KeyPress(key string, shift bool) bool {
	return key == SubmitKey && !shift
}

// Panel is the preview dialog of one document.
type Panel struct {
	Document model.Document
	Tab      Tab
	Composer Composer

	comments service.CommentService
}

// NewPanel opens doc on the preview tab.
func NewPanel(doc model.Document, comments service.CommentService) *Panel {
	return &Panel{Document: doc, Tab: TabPreview, comments: comments}
}

// SetTab switches the visible section.
func (p *Panel) SetTab(t Tab) { p.Tab = t }

// Comments returns the document's thread.
func (p *Panel) Comments(ctx context.Context) ([]model.Comment, error) {
	return p.comments.List(ctx, p.Document.ID)
}

// Submit posts the composer input as a comment and clears it.
// Whitespace-only input is ignored and reported as (nil, nil).
func (p *Panel) Submit(ctx context.Context) (*model.Comment, error) {
	if !p.Composer.CanSubmit() {
		return nil, nil
	}
	c, err := p.comments.Add(ctx, p.Document.ID, p.Composer.Input)
	if err != nil {
		if errors.Is(err, service.ErrEmptyComment) {
			return nil, nil
		}
		return nil, err
	}
	p.Composer.Input = ""
	return c, nil
}

// KeyPress feeds a key event to the composer and submits when it asks to.
// It returns the appended comment, if any.
func (p *Panel) KeyPress(ctx context.Context, key string, shift bool) (*model.Comment, error) {
	if !p.Composer.KeyPress(key, shift) {
		return nil, nil
	}
	return p.Submit(ctx)
}
