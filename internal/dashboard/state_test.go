package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdash/internal/model"
)

var (
	report = model.Document{ID: "doc-1", Name: "Report.pdf"}
	notes  = model.Document{ID: "doc-2", Name: "Notes.docx"}
)

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, ViewDocuments, s.View)
	assert.Nil(t, s.Selected)
	assert.False(t, s.UploadOpen)
	assert.False(t, s.PreviewOpen)
}

func TestParseView(t *testing.T) {
	for _, v := range Views {
		got, err := ParseView(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseView("reports")
	assert.Error(t, err)
}

func TestState_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		apply func(State) State
		check func(t *testing.T, s State)
	}{
		{
			name:  "switch view clears selection",
			apply: func(s State) State { return s.SelectDocument(report).SwitchView(ViewActivity) },
			check: func(t *testing.T, s State) {
				assert.Equal(t, ViewActivity, s.View)
				assert.Nil(t, s.Selected)
			},
		},
		{
			name:  "switch view lowers preview",
			apply: func(s State) State { return s.OpenPreview(report).SwitchView(ViewActivity).SwitchView(ViewDocuments) },
			check: func(t *testing.T, s State) {
				assert.False(t, s.PreviewOpen)
				assert.False(t, s.SelectDocument(report).PreviewVisible())
			},
		},
		{
			name:  "select keeps view",
			apply: func(s State) State { return s.SwitchView(ViewMonitoring).SelectDocument(notes) },
			check: func(t *testing.T, s State) {
				assert.Equal(t, ViewMonitoring, s.View)
				require.NotNil(t, s.Selected)
				assert.Equal(t, "doc-2", s.Selected.ID)
				assert.False(t, s.PreviewOpen)
			},
		},
		{
			name:  "open preview selects and raises flag",
			apply: func(s State) State { return s.OpenPreview(report) },
			check: func(t *testing.T, s State) {
				assert.True(t, s.PreviewOpen)
				assert.True(t, s.PreviewVisible())
				assert.Equal(t, "doc-1", s.Selected.ID)
			},
		},
		{
			name:  "close preview clears selection",
			apply: func(s State) State { return s.OpenPreview(report).ClosePreview(false) },
			check: func(t *testing.T, s State) {
				assert.False(t, s.PreviewOpen)
				assert.Nil(t, s.Selected)
			},
		},
		{
			name:  "legacy close preview keeps selection",
			apply: func(s State) State { return s.OpenPreview(report).ClosePreview(true) },
			check: func(t *testing.T, s State) {
				assert.False(t, s.PreviewVisible())
				require.NotNil(t, s.Selected)
				assert.Equal(t, "doc-1", s.Selected.ID)
			},
		},
		{
			name:  "upload flag",
			apply: func(s State) State { return s.OpenUpload() },
			check: func(t *testing.T, s State) {
				assert.True(t, s.UploadOpen)
				assert.False(t, s.CloseUpload().UploadOpen)
			},
		},
		{
			name:  "deleting selected clears selection",
			apply: func(s State) State { return s.SelectDocument(report).Deleted("doc-1") },
			check: func(t *testing.T, s State) { assert.Nil(t, s.Selected) },
		},
		{
			name:  "deleting another keeps selection",
			apply: func(s State) State { return s.SelectDocument(report).Deleted("doc-2") },
			check: func(t *testing.T, s State) {
				require.NotNil(t, s.Selected)
				assert.Equal(t, "doc-1", s.Selected.ID)
			},
		},
		{
			name:  "deleting the previewed document lowers the dialog",
			apply: func(s State) State { return s.OpenPreview(report).Deleted("doc-1") },
			check: func(t *testing.T, s State) {
				assert.False(t, s.PreviewOpen)
				assert.False(t, s.PreviewVisible())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.apply(Initial()))
		})
	}
}

func TestState_TransitionsDoNotModifyReceiver(t *testing.T) {
	s := Initial().SelectDocument(report)
	_ = s.SwitchView(ViewSettings)
	_ = s.Deleted("doc-1")
	_ = s.OpenPreview(notes)

	assert.Equal(t, ViewDocuments, s.View)
	assert.Equal(t, "doc-1", s.Selected.ID)
	assert.False(t, s.PreviewOpen)
}

func TestSidebar(t *testing.T) {
	items := Sidebar(ViewActivity)
	require.Len(t, items, 4)
	assert.Equal(t, "Documents", items[0].Label)
	assert.Equal(t, "Logs & Monitoring", items[2].Label)
	for _, it := range items {
		assert.Equal(t, it.View == ViewActivity, it.Active, it.View)
	}
}
