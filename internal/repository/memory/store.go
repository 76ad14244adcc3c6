package memory

import (
	"context"
	"sync"
	"time"

	"docdash/internal/model"
	"docdash/internal/repository"
	"docdash/internal/seed"
)

// Documents is the in-memory DocumentRepository.
type Documents struct {
	*Collection[model.Document]
	comments *Comments
}

// NewDocuments returns a document store holding docs.
func NewDocuments(docs ...model.Document) *Documents {
	return &Documents{Collection: NewCollection(func(d model.Document) string { return d.ID }, docs...)}
}

// Remove deletes the document and, when linked to a comment store, its thread.
func (d *Documents) Remove(ctx context.Context, id string) error {
	if err := d.Collection.Remove(ctx, id); err != nil {
		return err
	}
	if d.comments != nil {
		d.comments.drop(id)
	}
	return nil
}

var _ repository.DocumentRepository = (*Documents)(nil)

// Comments is the in-memory CommentRepository.
type Comments struct {
	mu      sync.RWMutex
	threads map[string][]model.Comment
}

// NewComments returns an empty comment store.
func NewComments() *Comments {
	return &Comments{threads: make(map[string][]model.Comment)}
}

var _ repository.CommentRepository = (*Comments)(nil)

// ListByDocument returns a copy of the document's thread.
func (c *Comments) ListByDocument(ctx context.Context, documentID string) ([]model.Comment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	thread := c.threads[documentID]
	out := make([]model.Comment, len(thread))
	copy(out, thread)
	return out, nil
}

// Add appends cm to the thread of cm.DocumentID.
func (c *Comments) Add(ctx context.Context, cm model.Comment) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.threads[cm.DocumentID] = append(c.threads[cm.DocumentID], cm)
	stored := cm
	return &stored, nil
}

func (c *Comments) drop(documentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.threads, documentID)
}

// Count returns the number of comments in every thread.
func (c *Comments) Count(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, thread := range c.threads {
		n += len(thread)
	}
	return n, nil
}

// Activity is the in-memory ActivityRepository.
type Activity struct {
	*Collection[model.ActivityLogEntry]
}

// NewActivity returns an activity log holding entries.
func NewActivity(entries ...model.ActivityLogEntry) *Activity {
	return &Activity{NewCollection(func(e model.ActivityLogEntry) string { return e.ID }, entries...)}
}

var _ repository.ActivityRepository = (*Activity)(nil)

// SystemLogs is the in-memory SystemLogRepository.
type SystemLogs struct {
	*Collection[model.SystemLogEntry]
}

// NewSystemLogs returns a system log holding entries.
func NewSystemLogs(entries ...model.SystemLogEntry) *SystemLogs {
	return &SystemLogs{NewCollection(func(e model.SystemLogEntry) string { return e.ID }, entries...)}
}

var _ repository.SystemLogRepository = (*SystemLogs)(nil)

// Store bundles one repository per entity collection.
type Store struct {
	Documents  *Documents
	Comments   *Comments
	Activity   *Activity
	SystemLogs *SystemLogs
}

// NewStore returns empty collections.
func NewStore() *Store {
	docs := NewDocuments()
	docs.comments = NewComments()
	return &Store{
		Documents:  docs,
		Comments:   docs.comments,
		Activity:   NewActivity(),
		SystemLogs: NewSystemLogs(),
	}
}

// NewSeededStore returns collections holding the built-in data set, timestamps read in loc.
// Every seeded document starts with the same starter comment thread.
func NewSeededStore(loc *time.Location) *Store {
	seeded := seed.Documents(loc)
	comments := NewComments()
	for _, d := range seeded {
		comments.threads[d.ID] = seed.Comments(d.ID, loc)
	}
	docs := NewDocuments(seeded...)
	docs.comments = comments
	return &Store{
		Documents:  docs,
		Comments:   comments,
		Activity:   NewActivity(seed.ActivityLogs(loc)...),
		SystemLogs: NewSystemLogs(seed.SystemLogs(loc)...),
	}
}

// Set exposes the store through the repository interfaces.
func (s *Store) Set() repository.Set {
	return repository.Set{
		Documents:  s.Documents,
		Comments:   s.Comments,
		Activity:   s.Activity,
		SystemLogs: s.SystemLogs,
	}
}
