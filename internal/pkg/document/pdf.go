package document

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFCanvas renders a Layout onto an A4 PDF.
type PDFCanvas struct {
	pdf *gofpdf.Fpdf
}

// NewPDFCanvas creates a portrait A4 canvas measured in millimetres.
func NewPDFCanvas() *PDFCanvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", bodyFontSize)
	return &PDFCanvas{pdf: pdf}
}

// AddPage starts a new page.
func (c *PDFCanvas) AddPage() {
	c.pdf.AddPage()
}

// PageHeight returns the page height in millimetres.
func (c *PDFCanvas) PageHeight() float64 {
	_, h := c.pdf.GetPageSize()
	return h
}

// SetFont selects the font style and size.
func (c *PDFCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

// Text draws a single line at the given position.
func (c *PDFCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

// SplitText word-wraps s to the given width using the current font metrics.
func (c *PDFCanvas) SplitText(s string, width float64) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return c.pdf.SplitText(s, width)
}

// Output writes the finished PDF to w.
func (c *PDFCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
