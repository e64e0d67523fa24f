package export

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core/paper"
)

// renderPDF draws an already-paginated document. Layout decided the page
// breaks; this function only translates lines into drawing calls.
func renderPDF(doc paper.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0) // pagination belongs to the layout engine

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, line := range page.Lines {
			drawLine(pdf, line)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "writing pdf")
	}
	if buf.Len() == 0 {
		return nil, errors.New("pdf output is empty")
	}
	return buf.Bytes(), nil
}

func drawLine(pdf *gofpdf.Fpdf, line paper.Line) {
	const contentW = 180.0

	switch line.Kind {
	case paper.LineTitle:
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(contentW, 9, line.Text, "", 1, "C", false, 0, "")
	case paper.LineSubtitle:
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(contentW, 7, line.Text, "", 1, "C", false, 0, "")
	case paper.LineMeta:
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW, 6, line.Text, "", 1, "C", false, 0, "")
	case paper.LineSectionHeader:
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentW, 9, line.Text, "", 1, "L", false, 0, "")
	case paper.LineInstruction:
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 6, line.Text, "", 1, "L", false, 0, "")
	case paper.LineQuestion:
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW-20, 6, line.Text, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(20, 6, marksLabel(line.Marks), "", 1, "R", false, 0, "")
	case paper.LineContinuation:
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW, 6, "    "+line.Text, "", 1, "L", false, 0, "")
	case paper.LineOption:
		style := ""
		if line.Correct {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(contentW, 6, "      "+line.Text, "", 1, "L", false, 0, "")
	case paper.LineEmptyState:
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(contentW, 6, line.Text, "", 1, "C", false, 0, "")
	case paper.LineSpacer:
		pdf.Ln(3)
	}
}

func marksLabel(marks int) string {
	if marks <= 0 {
		return ""
	}
	return strconv.Itoa(marks) + "M"
}
