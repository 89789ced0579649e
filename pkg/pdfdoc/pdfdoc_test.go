package pdfdoc_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-compass/pkg/pdfdoc"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"short", "hello", 10, []string{"hello"}},
		{"words", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pdfdoc.Wrap(tt.in, tt.width))
		})
	}
}

func TestWrap_RespectsWidth(t *testing.T) {
	line := strings.Repeat("course advising ", 30)
	for _, row := range pdfdoc.Wrap(line, pdfdoc.DefaultWrapWidth) {
		assert.LessOrEqual(t, len(row), pdfdoc.DefaultWrapWidth)
	}
}

func TestRenderAndExtract(t *testing.T) {
	var buf bytes.Buffer
	err := pdfdoc.Render(&buf, pdfdoc.Document{
		Title:     "Profile",
		Lines:     []string{"Mission: help students", "", "Contact: support"},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	text, err := pdfdoc.Extract(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Contains(t, text, "Mission")
	assert.Contains(t, text, "Contact")
}

func TestRender_Paginates(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = "row"
	}

	var buf bytes.Buffer
	require.NoError(t, pdfdoc.Render(&buf, pdfdoc.Document{Lines: lines}))
	assert.GreaterOrEqual(t, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")), 2)
}

func TestExtract_Invalid(t *testing.T) {
	_, err := pdfdoc.Extract(bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, pdfdoc.ErrEmptyDocument)

	junk := []byte("this is not a pdf at all")
	_, err = pdfdoc.Extract(bytes.NewReader(junk), int64(len(junk)))
	assert.Error(t, err)
}
