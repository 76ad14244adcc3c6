package seed

import (
	"context"
	"fmt"
	"time"

	"docdash/internal/repository"
)

// Load writes the data set into repos unless documents already exist.
// It reports whether anything was written.
func Load(ctx context.Context, repos repository.Set, loc *time.Location) (bool, error) {
	existing, err := repos.Documents.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list documents: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, d := range Documents(loc) {
		if _, err := repos.Documents.Add(ctx, d); err != nil {
			return false, fmt.Errorf("seed document %s: %w", d.ID, err)
		}
		for _, c := range Comments(d.ID, loc) {
			if _, err := repos.Comments.Add(ctx, c); err != nil {
				return false, fmt.Errorf("seed comment %s/%s: %w", d.ID, c.ID, err)
			}
		}
	}
	for _, e := range ActivityLogs(loc) {
		if _, err := repos.Activity.Add(ctx, e); err != nil {
			return false, fmt.Errorf("seed activity %s: %w", e.ID, err)
		}
	}
	for _, e := range SystemLogs(loc) {
		if _, err := repos.SystemLogs.Add(ctx, e); err != nil {
			return false, fmt.Errorf("seed system log %s: %w", e.ID, err)
		}
	}
	return true, nil
}
