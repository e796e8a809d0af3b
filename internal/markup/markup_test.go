package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []Segment
	}{
		{
			name:     "Empty body",
			body:     "",
			expected: []Segment{},
		},
		{
			name:     "Plain text",
			body:     "Eat more vegetables.",
			expected: []Segment{{Text: "Eat more vegetables."}},
		},
		{
			name: "Single bold run",
			body: "The **glycemic index** ranks foods.",
			expected: []Segment{
				{Text: "The "},
				{Text: "glycemic index", Bold: true},
				{Text: " ranks foods."},
			},
		},
		{
			name: "Bold at both ends",
			body: "**Low** and **high**",
			expected: []Segment{
				{Text: "Low", Bold: true},
				{Text: " and "},
				{Text: "high", Bold: true},
			},
		},
		{
			name:     "Unterminated marker stays literal",
			body:     "Keep **calm",
			expected: []Segment{{Text: "Keep **calm"}},
		},
		{
			name: "Empty bold run is dropped",
			body: "a****b",
			expected: []Segment{
				{Text: "ab"},
			},
		},
		{
			name: "Trailing unterminated marker after a bold run",
			body: "**one** two **three",
			expected: []Segment{
				{Text: "one", Bold: true},
				{Text: " two **three"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Segments(tt.body))
		})
	}
}

func TestRenderer_HTML(t *testing.T) {
	r := NewRenderer()

	t.Run("Bold becomes strong", func(t *testing.T) {
		out := r.HTML("The **glycemic index** ranks foods.")
		assert.Equal(t, "<p>The <strong>glycemic index</strong> ranks foods.</p>", out)
	})

	t.Run("Paragraphs", func(t *testing.T) {
		out := r.HTML("First.\n\nSecond.")
		assert.Equal(t, "<p>First.</p><p>Second.</p>", out)
	})

	t.Run("Line breaks", func(t *testing.T) {
		out := r.HTML("One\nTwo")
		assert.Contains(t, out, "<br")
		assert.Contains(t, out, "One")
		assert.Contains(t, out, "Two")
	})

	t.Run("Source HTML is escaped", func(t *testing.T) {
		out := r.HTML("<script>alert(1)</script> **<b>x</b>**")
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "<b>")
		assert.Contains(t, out, "&lt;script&gt;")
		assert.Contains(t, out, "<strong>&lt;b&gt;x&lt;/b&gt;</strong>")
	})

	t.Run("Blank body", func(t *testing.T) {
		assert.Equal(t, "", r.HTML("  \n\n  "))
	})
}
