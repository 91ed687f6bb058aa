package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/vedicwisdom/funnel-backend/internal/astro"
	"github.com/vedicwisdom/funnel-backend/internal/content"
)

// Renderer lays the ten report sections onto a fixed four-page A4 PDF,
// with the tarot spread on the final page when the plan includes it.
type Renderer struct {
	brand string
	year  int
}

// NewRenderer builds a PDF renderer for the given brand and report year.
func NewRenderer(brand string, year int) *Renderer {
	if brand == "" {
		brand = "Vedic Wisdom"
	}
	if year == 0 {
		year = 2026
	}
	return &Renderer{brand: brand, year: year}
}

// Filename is the attachment name used when the report is emailed.
func (r *Renderer) Filename(name string) string {
	return fmt.Sprintf("Vedic_Report_%d_%s.pdf", r.year, name)
}

// Render produces the report PDF for one customer.
func (r *Renderer) Render(name string, data content.ReportContent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s %d Report", r.brand, r.year), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Page 1: cover and overview.
	r.addPage(pdf, tr, fmt.Sprintf("%s  |  %d", r.brand, r.year))
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(245, 158, 11)
	pdf.CellFormat(0, 14, tr(fmt.Sprintf("Your %d Vedic Horoscope", r.year)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 8, tr("Personalized Cosmic Guidance for "+name), "", 1, "C", false, 0, "")
	pdf.Ln(8)
	r.section(pdf, tr, "Overview & Cosmic Outlook", data.Intro)

	// Page 2: who you are and what moves.
	r.addPage(pdf, tr, "Page 2")
	r.section(pdf, tr, "Your Core Personality", data.Personality)
	r.section(pdf, tr, fmt.Sprintf("Major Planetary Transits in %d", r.year), data.Transits)

	// Page 3: life pillars.
	r.addPage(pdf, tr, "Page 3")
	r.section(pdf, tr, "Career & Professional Growth", data.Career)
	r.section(pdf, tr, "Wealth & Financial Flow", data.Finance)
	r.section(pdf, tr, "Health & Well-being", data.Health)
	r.section(pdf, tr, "Love & Relationships", data.Love)
	r.section(pdf, tr, "Your Lucky Elements", data.Lucky)
	r.section(pdf, tr, "Birth Chart Insights (Kundli)", data.Kundli)

	// Page 4: tarot (if purchased) and closing words.
	r.addPage(pdf, tr, "Final Page")
	if data.IsTarot {
		r.tarot(pdf, tr, data)
	}
	r.section(pdf, tr, "Closing Blessings", data.Conclusion)

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(148, 163, 184)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s  |  May the stars guide your %d", r.brand, r.year)), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) addPage(pdf *gofpdf.Fpdf, tr func(string) string, corner string) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(245, 158, 11)
	pdf.CellFormat(95, 6, tr(r.brand), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(148, 163, 184)
	pdf.CellFormat(95, 6, tr(corner), "", 1, "R", false, 0, "")
	pdf.Ln(6)
}

func (r *Renderer) section(pdf *gofpdf.Fpdf, tr func(string) string, title, body string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(245, 158, 11)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 41, 59)
	pdf.MultiCell(0, 5, tr(body), "", "L", false)
	pdf.Ln(4)
}

func (r *Renderer) tarot(pdf *gofpdf.Fpdf, tr func(string) string, data content.ReportContent) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(147, 51, 234)
	pdf.CellFormat(0, 8, tr("Your Personal Tarot Guidance"), "", 1, "L", false, 0, "")

	if data.TarotQuestion != "" {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(148, 163, 184)
		pdf.CellFormat(0, 5, tr("YOUR QUESTION"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(88, 28, 135)
		pdf.MultiCell(0, 5, tr(data.TarotQuestion), "", "L", false)
		pdf.Ln(2)
	}

	for i, card := range data.TarotCards {
		label := "FUTURE"
		if i < len(astro.SpreadPositions) {
			label = strings.ToUpper(astro.SpreadPositions[i])
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(147, 51, 234)
		pdf.CellFormat(30, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(30, 41, 59)
		pdf.CellFormat(0, 6, tr(card), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 41, 59)
	pdf.MultiCell(0, 5, tr(data.TarotAnalysis), "", "L", false)
	pdf.Ln(4)
}
