// Package document implements the paginated report layout used by the data
// export. A Layout tracks a vertical cursor on a Canvas and starts a new page
// whenever the next line would run past the bottom margin; no line is ever
// split across a page boundary.
package document

// Layout metrics, in canvas units (mm on the PDF backend).
const (
	TopMargin    = 20.0
	LeftMargin   = 20.0
	LineHeight   = 7.0
	WrapWidth    = 150.0
	WrapIndent   = 5.0
	TitleAdvance = 15.0

	// Bottom thresholds: a section header needs more headroom than a plain
	// line so that a header is never stranded at the very end of a page.
	sectionBreak = 30.0
	lineBreak    = 15.0

	titleFontSize   = 18.0
	sectionFontSize = 14.0
	bodyFontSize    = 10.0
	footerFontSize  = 8.0
)

// Canvas is the drawing surface a Layout writes to.
type Canvas interface {
	// AddPage starts a new page and makes it current.
	AddPage()
	// PageHeight returns the page height in canvas units.
	PageHeight() float64
	// SetFont selects the font style ("" or "B") and size for subsequent text.
	SetFont(style string, size float64)
	// Text draws a single line at the given position on the current page.
	Text(x, y float64, s string)
	// SplitText word-wraps s into lines no wider than width.
	SplitText(s string, width float64) []string
}

// Layout is the sequential report writer.
type Layout struct {
	canvas Canvas
	y      float64
}

// NewLayout opens the first page and positions the cursor at the top margin.
func NewLayout(canvas Canvas) *Layout {
	canvas.AddPage()
	return &Layout{canvas: canvas, y: TopMargin}
}

// ensure paginates when fewer than threshold units remain below the cursor.
func (l *Layout) ensure(threshold float64) {
	if l.y > l.canvas.PageHeight()-threshold {
		l.canvas.AddPage()
		l.y = TopMargin
	}
}

// Title writes the document title line.
func (l *Layout) Title(s string) {
	l.canvas.SetFont("B", titleFontSize)
	l.canvas.Text(LeftMargin, l.y, s)
	l.y += TitleAdvance
}

// Section writes a bold section header and switches back to the body font.
func (l *Layout) Section(title string) {
	l.ensure(sectionBreak)
	l.canvas.SetFont("B", sectionFontSize)
	l.canvas.Text(LeftMargin, l.y, title)
	l.y += 10
	l.canvas.SetFont("", bodyFontSize)
}

// KeyValue writes a "label: value" line, rendering a missing value as "N/A".
func (l *Layout) KeyValue(label, value string) {
	if value == "" {
		value = "N/A"
	}
	l.Line(label + ": " + value)
}

// Line writes a single body line.
func (l *Layout) Line(s string) {
	l.ensure(lineBreak)
	l.canvas.Text(LeftMargin, l.y, s)
	l.y += LineHeight
}

// Wrapped word-wraps s at the fixed column width and writes each resulting
// line indented, paginating between lines when needed.
func (l *Layout) Wrapped(s string) {
	for _, line := range l.canvas.SplitText(s, WrapWidth) {
		l.ensure(lineBreak)
		l.canvas.Text(LeftMargin+WrapIndent, l.y, line)
		l.y += LineHeight
	}
}

// Gap advances the cursor without writing.
func (l *Layout) Gap(h float64) {
	l.y += h
}

// Footer writes the generation stamp at the bottom of the current page.
func (l *Layout) Footer(s string) {
	l.canvas.SetFont("", footerFontSize)
	l.canvas.Text(LeftMargin, l.canvas.PageHeight()-10, s)
}
