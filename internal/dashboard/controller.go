package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"docdash/internal/filter"
	"docdash/internal/model"
	"docdash/internal/preview"
	"docdash/internal/service"
	"docdash/internal/upload"
)

// Options tunes controller behaviour.
type Options struct {
	// LegacyPreviewClose keeps the selection after the preview dialog closes.
	LegacyPreviewClose bool
}

// UploadSnapshot is the visible state of the upload dialog.
type UploadSnapshot struct {
	Open        bool               `json:"open"`
	File        *upload.FileHandle `json:"file,omitempty"`
	Tags        string             `json:"tags"`
	Description string             `json:"description"`
	DropZone    upload.DropZone    `json:"drop_zone"`
	CanSubmit   bool               `json:"can_submit"`
}

// PreviewSnapshot is the visible state of the preview dialog.
type PreviewSnapshot struct {
	Document  model.Document `json:"document"`
	Tab       preview.Tab    `json:"tab"`
	Input     string         `json:"input"`
	CanSubmit bool           `json:"can_submit"`
}

// Snapshot is a read-only copy of everything the dashboard shows.
type Snapshot struct {
	State            State                       `json:"state"`
	PreviewVisible   bool                        `json:"preview_visible"`
	Sidebar          []NavItem                   `json:"sidebar"`
	SidebarCollapsed bool                        `json:"sidebar_collapsed"`
	Search           filter.DocumentCriteria     `json:"search"`
	Documents        *service.DocumentListResult `json:"documents,omitempty"`
	Upload           UploadSnapshot              `json:"upload"`
	Preview          *PreviewSnapshot            `json:"preview,omitempty"`
}

// Controller routes dashboard actions to the panels. It is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	state     State
	collapsed bool
	search    filter.DocumentCriteria
	form      upload.Form
	panel     *preview.Panel

	docs     service.DocumentService
	comments service.CommentService
	uploads  service.UploadService
	opts     Options
	log      *zap.Logger
}

// NewController returns a controller in the initial state.
func NewController(docs service.DocumentService, comments service.CommentService, uploads service.UploadService, opts Options, log *zap.Logger) *Controller {
	return &Controller{
		state:    Initial(),
		docs:     docs,
		comments: comments,
		uploads:  uploads,
		opts:     opts,
		log:      log.Named("dashboard"),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SwitchView(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SwitchView(v)
	c.panel = nil
}

// Select records the document with id as the selection.
func (c *Controller) Select(ctx context.Context, id string) error {
	doc, err := c.docs.Get(ctx, id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SelectDocument(*doc)
	if c.state.PreviewOpen && (c.panel == nil || c.panel.Document.ID != doc.ID) {
		c.panel = preview.NewPanel(*doc, c.comments)
	}
	return nil
}

// OpenPreview selects the document with id and opens its preview dialog.
func (c *Controller) OpenPreview(ctx context.Context, id string) error {
	doc, err := c.docs.Get(ctx, id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.OpenPreview(*doc)
	c.panel = preview.NewPanel(*doc, c.comments)
	return nil
}

func (c *Controller) ClosePreview() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.ClosePreview(c.opts.LegacyPreviewClose)
	c.panel = nil
}

func (c *Controller) OpenUpload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.OpenUpload()
	c.form.Open = true
}

// CloseUpload lowers the upload dialog and discards its fields.
func (c *Controller) CloseUpload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.CloseUpload()
	c.form.Reset()
}

// EditUpload applies fn to the upload form.
func (c *Controller) EditUpload(fn func(f *upload.Form)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.form)
}

// SubmitUpload hands the upload form to the upload service and closes the dialog.
// Without a file nothing happens and false is returned. On error the form is left as it was.
func (c *Controller) SubmitUpload(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.form
	sub, ok := next.Submit()
	if !ok {
		return false, nil
	}
	if err := c.uploads.Submit(ctx, sub); err != nil {
		return false, fmt.Errorf("submit upload: %w", err)
	}
	c.form = next
	c.state = c.state.CloseUpload()
	return true, nil
}

// EditComment replaces the preview composer input. It is a no-op without an open preview.
func (c *Controller) EditComment(input string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panel != nil {
		c.panel.Composer.SetInput(input)
	}
}

// SetPreviewTab switches the preview dialog section.
func (c *Controller) SetPreviewTab(t preview.Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panel != nil {
		c.panel.SetTab(t)
	}
}

// SubmitComment posts the preview composer input. It returns nil without an open preview
// or when the input is whitespace only.
func (c *Controller) SubmitComment(ctx context.Context) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panel == nil {
		return nil, nil
	}
	return c.panel.Submit(ctx)
}

// RequestDelete removes the document with id and drops it from the selection.
// Deleting an unknown id is a no-op.
func (c *Controller) RequestDelete(ctx context.Context, id string) error {
	if err := c.docs.Delete(ctx, id); err != nil && !errors.Is(err, service.ErrNotFound) {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Deleted(id)
	if c.panel != nil && c.panel.Document.ID == id {
		c.panel = nil
	}
	return nil
}

// Search sets the document list query.
func (c *Controller) Search(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = filter.DocumentCriteria{Query: query}
}

// ToggleSidebar flips the collapsed state and returns it.
func (c *Controller) ToggleSidebar() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collapsed = !c.collapsed
	return c.collapsed
}

// Logout has no effect besides being logged.
func (c *Controller) Logout() {
	c.log.Info("logout requested")
}

// Snapshot returns the current dashboard. The document list is included only on the documents view.
func (c *Controller) Snapshot(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := &Snapshot{
		State:            c.state,
		PreviewVisible:   c.state.PreviewVisible(),
		Sidebar:          Sidebar(c.state.View),
		SidebarCollapsed: c.collapsed,
		Search:           c.search,
		Upload: UploadSnapshot{
			Open:        c.state.UploadOpen,
			Tags:        c.form.Tags,
			Description: c.form.Description,
			DropZone:    c.form.DropZone(),
			CanSubmit:   c.form.CanSubmit(),
		},
	}
	if c.form.File != nil {
		f := *c.form.File
		snap.Upload.File = &f
	}
	if c.panel != nil && snap.PreviewVisible && c.panel.Document.ID == c.state.Selected.ID {
		snap.Preview = &PreviewSnapshot{
			Document:  c.panel.Document,
			Tab:       c.panel.Tab,
			Input:     c.panel.Composer.Input,
			CanSubmit: c.panel.Composer.CanSubmit(),
		}
	}
	if c.state.View == ViewDocuments {
		res, err := c.docs.List(ctx, c.search)
		if err != nil {
			return nil, err
		}
		snap.Documents = res
	}
	return snap, nil
}
