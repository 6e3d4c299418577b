package document

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCanvas records every line written, grouped per page.
type fakeCanvas struct {
	height float64
	pages  [][]string
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{height: 297} // A4 portrait, mm
}

func (c *fakeCanvas) AddPage() {
	c.pages = append(c.pages, nil)
}

func (c *fakeCanvas) PageHeight() float64 {
	return c.height
}

func (c *fakeCanvas) SetFont(style string, size float64) {}

func (c *fakeCanvas) Text(x, y float64, s string) {
	c.pages[len(c.pages)-1] = append(c.pages[len(c.pages)-1], s)
}

func (c *fakeCanvas) SplitText(s string, width float64) []string {
	// Crude word wrap; the width unit does not matter for layout decisions.
	var lines []string
	var cur []string
	for _, w := range strings.Fields(s) {
		cur = append(cur, w)
		if len(cur) == 8 {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
		}
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return lines
}

func (c *fakeCanvas) allLines() []string {
	var all []string
	for _, p := range c.pages {
		all = append(all, p...)
	}
	return all
}

func TestLayoutSinglePageWhenContentFits(t *testing.T) {
	canvas := newFakeCanvas()
	l := NewLayout(canvas)

	l.Title("Student Dashboard Export")
	l.Section("Profile Information")
	l.KeyValue("Name", "Jane Doe")

	assert.Len(t, canvas.pages, 1)
	assert.Equal(t, []string{"Student Dashboard Export", "Profile Information", "Name: Jane Doe"}, canvas.pages[0])
}

func TestLayoutPaginatesLongBody(t *testing.T) {
	canvas := newFakeCanvas()
	l := NewLayout(canvas)

	l.Title("Report")
	const n = 100
	for i := 0; i < n; i++ {
		l.Line(fmt.Sprintf("line %03d", i))
	}

	require.Greater(t, len(canvas.pages), 1, "content taller than one page must paginate")

	// Every line lands exactly once, on exactly one page.
	seen := map[string]int{}
	for _, line := range canvas.allLines() {
		seen[line]++
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, seen[fmt.Sprintf("line %03d", i)])
	}

	// No page holds more lines than fit between the top margin and the
	// bottom line threshold.
	maxPerPage := int((canvas.height-lineBreak-TopMargin)/LineHeight) + 1
	for i, p := range canvas.pages {
		assert.LessOrEqual(t, len(p), maxPerPage+1, "page %d overfull", i)
	}
}

func TestWrappedLinesNeverSplitAcrossPages(t *testing.T) {
	canvas := newFakeCanvas()
	l := NewLayout(canvas)

	l.Title("Report")
	// Push the cursor close to the bottom, then write a long paragraph.
	for i := 0; i < 36; i++ {
		l.Line(fmt.Sprintf("filler %d", i))
	}
	words := make([]string, 48)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}
	paragraph := strings.Join(words, " ")
	l.Wrapped(paragraph)

	require.Greater(t, len(canvas.pages), 1)
	wrapped := canvas.SplitText(paragraph, WrapWidth)
	seen := map[string]int{}
	for _, line := range canvas.allLines() {
		seen[line]++
	}
	for _, line := range wrapped {
		assert.Equal(t, 1, seen[line], "wrapped line must appear whole on exactly one page")
	}
}

func TestSectionHeaderStartsNewPageNearBottom(t *testing.T) {
	canvas := newFakeCanvas()
	l := NewLayout(canvas)

	l.Title("Report")
	for i := 0; i < 36; i++ {
		l.Line(fmt.Sprintf("filler %d", i))
	}
	l.Section("Courses (3)")

	require.Equal(t, 2, len(canvas.pages))
	require.NotEmpty(t, canvas.pages[1])
	assert.Equal(t, "Courses (3)", canvas.pages[1][0], "header must not be stranded at the page bottom")
}

func TestKeyValueRendersMissingValueAsNA(t *testing.T) {
	canvas := newFakeCanvas()
	l := NewLayout(canvas)

	l.KeyValue("Major", "")

	assert.Equal(t, []string{"Major: N/A"}, canvas.pages[0])
}
