// Package receipt renders order receipts as PDF documents.
package receipt

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

const (
	marginLeft   = 50.0
	marginRight  = 550.0
	marginTop    = 50.0
	marginBottom = 40.0
	tableTop     = 220.0
	rowHeight    = 20.0
	footerHeight = 14.0
)

var (
	dayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

	monthNames = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// Render writes r as an A4 PDF to w. Long orders continue on further pages.
func Render(w io.Writer, r domain.Receipt) error {
	if err := build(r).Output(w); err != nil {
		return fmt.Errorf("pdf.Output -> %w", err)
	}

	return nil
}

func build(r domain.Receipt) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(fmt.Sprintf("receipt-%d", r.OrderID), true)
	// Rows are placed by absolute position, so page breaks are handled by
	// nextRow instead of fpdf.
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeHeader(pdf, tr, r)
	writeDetails(pdf, tr, r)
	y := writeItems(pdf, tr, r)
	writeFooter(pdf, tr, r, y)

	return pdf
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, r domain.Receipt) {
	pdf.SetTextColor(0x44, 0x44, 0x44)
	pdf.SetFont("Helvetica", "", 20)
	pdf.Text(marginLeft, 65, tr(r.Title))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, 90, tr(r.Subtitle))

	pdf.SetDrawColor(0x44, 0x44, 0x44)
	pdf.SetLineWidth(1)
	pdf.Line(marginLeft, 120, marginRight, 120)
}

func writeDetails(pdf *fpdf.Fpdf, tr func(string) string, r domain.Receipt) {
	details := [][2]string{
		{"No. Pesanan", ": " + strconv.FormatUint(uint64(r.OrderID), 10)},
		{"Tanggal", ": " + FormatDate(r.IssuedAt)},
		{"Siswa", ": " + r.StudentName},
		{"Stand", ": " + r.StandName},
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for i, d := range details {
		y := 140 + float64(i)*15
		pdf.Text(marginLeft, y, tr(d[0]))
		pdf.Text(150, y, tr(d[1]))
	}

	pdf.SetDrawColor(0xaa, 0xaa, 0xaa)
	pdf.Line(marginLeft, 200, marginRight, 200)
}

func writeTableHeader(pdf *fpdf.Fpdf, top float64) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, top)
	pdf.CellFormat(150, 12, "Item", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 12, "Qty", "", 0, "R", false, 0, "")
	pdf.SetX(300)
	pdf.CellFormat(90, 12, "Harga", "", 0, "R", false, 0, "")
	pdf.SetX(400)
	pdf.CellFormat(90, 12, "Total", "", 0, "R", false, 0, "")
	pdf.Line(marginLeft, top+15, marginRight, top+15)
	pdf.SetFont("Helvetica", "", 10)

	return top + 30
}

// nextRow returns y when a row of height h still fits on the current page.
// Otherwise it starts a new page and returns the first free position on it,
// repeating the table header when header is set.
func nextRow(pdf *fpdf.Fpdf, y, h float64, header bool) float64 {
	_, pageHeight := pdf.GetPageSize()
	if y+h <= pageHeight-marginBottom {
		return y
	}

	pdf.AddPage()
	if header {
		return writeTableHeader(pdf, marginTop)
	}

	return marginTop
}

// writeItems draws the item table and returns the y position below it.
func writeItems(pdf *fpdf.Fpdf, tr func(string) string, r domain.Receipt) float64 {
	y := writeTableHeader(pdf, tableTop)
	for _, line := range r.Lines {
		y = nextRow(pdf, y, rowHeight, true)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(150, 12, tr(line.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(90, 12, strconv.Itoa(line.Quantity), "", 0, "R", false, 0, "")
		pdf.SetX(300)
		pdf.CellFormat(90, 12, FormatCurrency(line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.SetX(400)
		pdf.CellFormat(90, 12, FormatCurrency(float64(line.Total)), "", 0, "R", false, 0, "")
		y += rowHeight
	}

	y = nextRow(pdf, y, rowHeight, false)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(220, y)
	pdf.CellFormat(170, 12, "Total Pembayaran", "", 0, "R", false, 0, "")
	pdf.SetX(400)
	pdf.CellFormat(90, 12, FormatCurrency(float64(r.GrandTotal)), "", 0, "R", false, 0, "")

	return y + rowHeight
}

func writeFooter(pdf *fpdf.Fpdf, tr func(string) string, r domain.Receipt, y float64) {
	pdf.SetFont("Helvetica", "", 10)
	y += 30
	for _, line := range r.Footer {
		y = nextRow(pdf, y, footerHeight, false)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(marginRight-marginLeft, footerHeight, tr(line), "", 0, "C", false, 0, "")
		y += footerHeight
	}
}

// FormatCurrency formats v as Indonesian rupiah, e.g. "Rp 15.000,00".
func FormatCurrency(v float64) string {
	return "Rp " + humanize.FormatFloat("#.###,##", v)
}

// FormatDate formats t in the Indonesian long form, e.g.
// "Senin, 15 Januari 2024 pukul 10.30". t is formatted in its own location.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d pukul %02d.%02d",
		dayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
