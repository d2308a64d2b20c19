package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// Page geometry and palette. The heading color matches the report's
// traditional #1f77b4.
const (
	pageMargin = 10.0
	usableW    = 210 - 2*pageMargin // A4 portrait
	rowH       = 7.0
)

// WritePDF serializes the document to an A4 PDF at path. The file is
// written to a temporary sibling and atomically renamed into place, so
// an existing file at path is never partially overwritten and a failed
// write leaves nothing behind.
func WritePDF(doc *Document, path string) error {
	pdf, err := renderPDF(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".report-*.pdf")
	if err != nil {
		return &SerializeError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &SerializeError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &SerializeError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &SerializeError{Path: path, Err: err}
	}
	return nil
}

// renderPDF walks the block sequence into an fpdf document.
func renderPDF(doc *Document) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Exploratory Data Analysis Report", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	for i, b := range doc.Blocks {
		switch blk := b.(type) {
		case Title:
			pdf.SetFont("Helvetica", "B", 24)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(usableW, 12, blk.Text, "", 1, "C", false, 0, "")
		case Heading:
			pdf.SetFont("Helvetica", "B", 16)
			pdf.SetTextColor(31, 119, 180)
			pdf.CellFormat(usableW, 10, blk.Text, "", 1, "L", false, 0, "")
			pdf.Ln(1)
		case SubHeading:
			pdf.SetFont("Helvetica", "B", 13)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(usableW, 8, blk.Text, "", 1, "L", false, 0, "")
		case Paragraph:
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(usableW, 6, blk.Text, "", 1, "L", false, 0, "")
		case Table:
			if err := renderTable(pdf, blk); err != nil {
				return nil, &RenderError{Block: fmt.Sprintf("table (block %d)", i), Err: err}
			}
		case PageBreak:
			pdf.AddPage()
		case Spacer:
			pdf.Ln(blk.Height)
		default:
			return nil, &RenderError{Block: fmt.Sprintf("block %d", i), Err: fmt.Errorf("unknown block type %T", b)}
		}
	}
	if pdf.Err() {
		return nil, &RenderError{Block: "document", Err: pdf.Error()}
	}
	return pdf, nil
}

func renderTable(pdf *fpdf.Fpdf, t Table) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("table has no header")
	}
	colW := usableW / float64(len(t.Header))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range t.Header {
		pdf.CellFormat(colW, rowH, fitCell(pdf, h, colW), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row has %d cells, header has %d", len(row), len(t.Header))
		}
		for _, cell := range row {
			pdf.CellFormat(colW, rowH, fitCell(pdf, cell, colW), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
	return nil
}

// fitCell shortens a value until it fits the cell width.
func fitCell(pdf *fpdf.Fpdf, s string, w float64) string {
	const pad = 2.0
	for pdf.GetStringWidth(s) > w-pad && len(s) > 1 {
		r := []rune(s)
		s = string(r[:len(r)-1])
	}
	return s
}
