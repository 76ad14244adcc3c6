package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docdash/internal/model"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "budget", []string{"budget"}},
		{"trims pieces", " q2 , finance,report ", []string{"q2", "finance", "report"}},
		{"keeps empty pieces", "a,,b", []string{"a", "", "b"}},
		{"empty input", "", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.in))
		})
	}
}

func TestFileHandle(t *testing.T) {
	f := FileHandle{Name: "Roadmap.PPTX", Size: 3 * 1024 * 1024}
	assert.Equal(t, "3.00 MB", f.SizeLabel())
	assert.Equal(t, model.TypePowerPoint, f.DocumentType())

	assert.Equal(t, "0.50 MB", FileHandle{Size: 512 * 1024}.SizeLabel())
}

func TestForm_DropZone(t *testing.T) {
	var f Form
	assert.Equal(t, ZoneIdle, f.DropZone())

	f.DragOver()
	assert.Equal(t, ZoneDragging, f.DropZone())

	f.DragLeave()
	assert.Equal(t, ZoneIdle, f.DropZone())

	f.DragOver()
	f.Drop(&FileHandle{Name: "a.pdf"})
	assert.False(t, f.Dragging())
	assert.Equal(t, ZonePopulated, f.DropZone())

	f.DragOver()
	assert.Equal(t, ZonePopulated, f.DropZone())
}

func TestForm_FileReplacement(t *testing.T) {
	var f Form

	f.Browse(&FileHandle{Name: "first.pdf"})
	f.Drop(&FileHandle{Name: "second.docx"})
	assert.Equal(t, "second.docx", f.File.Name)

	f.Browse(nil)
	f.Drop(nil)
	assert.Equal(t, "second.docx", f.File.Name)

	f.RemoveFile()
	assert.Nil(t, f.File)
	assert.False(t, f.CanSubmit())
}

func TestForm_Submit(t *testing.T) {
	t.Run("without file is a no-op", func(t *testing.T) {
		f := Form{Open: true, Tags: "a", Description: "d"}

		_, ok := f.Submit()

		assert.False(t, ok)
		assert.True(t, f.Open)
		assert.Equal(t, "a", f.Tags)
		assert.Equal(t, "d", f.Description)
	})

	t.Run("normalizes and resets", func(t *testing.T) {
		f := Form{Open: true}
		f.Browse(&FileHandle{Name: "Budget.xlsx", Size: 1024})
		f.SetTags("budget, q3")
		f.SetDescription("Quarterly budget")

		s, ok := f.Submit()

		assert.True(t, ok)
		assert.Equal(t, "Budget.xlsx", s.File.Name)
		assert.Equal(t, []string{"budget", "q3"}, s.Tags)
		assert.Equal(t, "Quarterly budget", s.Description)
		assert.Equal(t, Form{}, f)
	})
}
