package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDsAreUnique(t *testing.T) {
	loc := time.UTC

	seen := map[string]bool{}
	for _, d := range Documents(loc) {
		assert.False(t, seen[d.ID], d.ID)
		seen[d.ID] = true
	}

	seen = map[string]bool{}
	for _, l := range ActivityLogs(loc) {
		assert.False(t, seen[l.ID], l.ID)
		seen[l.ID] = true
	}

	seen = map[string]bool{}
	for _, c := range Comments("doc-1", loc) {
		assert.False(t, seen[c.ID], c.ID)
		assert.Equal(t, "doc-1", c.DocumentID)
		seen[c.ID] = true
	}
}

func TestTimestampsUseLocation(t *testing.T) {
	loc := time.FixedZone("X", -5*60*60)
	docs := Documents(loc)
	assert.Equal(t, loc, docs[0].UploadedAt.Location())
	assert.Equal(t, 10, docs[0].UploadedAt.Hour())
}

func TestRecentActivity(t *testing.T) {
	now := time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)
	feed := RecentActivity(now)
	assert.Len(t, feed, 4)
	assert.Equal(t, now.Add(-time.Hour), feed[3].At)
}
