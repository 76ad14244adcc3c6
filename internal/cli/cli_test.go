package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docdash/internal/repository"
	"docdash/internal/repository/memory"
	"docdash/internal/service"
)

func seededOpener(released *bool) Opener {
	return func(context.Context, *zap.Logger) (repository.Set, func() error, error) {
		return memory.NewSeededStore(time.UTC).Set(), func() error {
			if released != nil {
				*released = true
			}
			return nil
		}, nil
	}
}

func run(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(open, time.UTC)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDocuments(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var released bool
		out, err := run(t, seededOpener(&released), "documents", "report")

		require.NoError(t, err)
		assert.Contains(t, out, "Financial Report Q2.xlsx")
		assert.Contains(t, out, "May 14, 2023")
		assert.NotContains(t, out, "Meeting Minutes.docx")
		assert.True(t, released)
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, seededOpener(nil), "documents", "-o", "json")
		require.NoError(t, err)

		var res service.DocumentListResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Len(t, res.Items, 5)
		assert.Equal(t, "doc-1", res.Items[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		out, err := run(t, seededOpener(nil), "documents", "zzz")
		require.NoError(t, err)
		assert.Contains(t, out, "No documents found")
	})
}

func TestActivity(t *testing.T) {
	out, err := run(t, seededOpener(nil), "activity", "--action", "download")
	require.NoError(t, err)
	assert.Contains(t, out, "downloaded")
	assert.Contains(t, out, "Financial Report Q2.xlsx")
	assert.NotContains(t, out, "uploaded")

	_, err = run(t, seededOpener(nil), "activity", "--action", "rename")
	assert.ErrorContains(t, err, `unknown action "rename"`)

	_, err = run(t, seededOpener(nil), "activity", "--date", "14/05/2023")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestSyslog(t *testing.T) {
	out, err := run(t, seededOpener(nil), "syslog", "--level", "error", "-o", "json")
	require.NoError(t, err)

	var res service.SystemLogListResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "error", string(res.Items[0].Level))
	assert.Equal(t, 5, res.Total)
}

func TestMonitoring(t *testing.T) {
	out, err := run(t, seededOpener(nil), "monitoring", "--range", "30d")
	require.NoError(t, err)
	assert.Contains(t, out, "Range: 30d")
	assert.Contains(t, out, "PDF 45%")

	_, err = run(t, seededOpener(nil), "monitoring", "--range", "1y")
	assert.Error(t, err)
}

func TestRoot_Errors(t *testing.T) {
	_, err := run(t, seededOpener(nil), "documents", "-o", "yaml")
	assert.ErrorContains(t, err, "unknown output")

	failing := func(context.Context, *zap.Logger) (repository.Set, func() error, error) {
		return repository.Set{}, nil, errors.New("refused")
	}
	_, err = run(t, failing, "documents")
	assert.ErrorContains(t, err, "open store: refused")
}
