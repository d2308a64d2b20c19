package report

import (
	"fmt"
	"time"
)

// Metadata carries the optional provenance stamped on a report.
type Metadata struct {
	GeneratedAt time.Time
	SourceFile  string
	ReportID    string
}

// Block is one renderable element of a report document.
type Block interface {
	blockNode()
}

// Title is the top-level document title.
type Title struct{ Text string }

// Heading is a section heading.
type Heading struct{ Text string }

// SubHeading is a per-column heading inside a section.
type SubHeading struct{ Text string }

// Paragraph is a single line of body text.
type Paragraph struct{ Text string }

// Table is a bordered grid with a shaded header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// PageBreak starts a new page.
type PageBreak struct{}

// Spacer inserts vertical whitespace, in millimeters.
type Spacer struct{ Height float64 }

func (Title) blockNode()      {}
func (Heading) blockNode()    {}
func (SubHeading) blockNode() {}
func (Paragraph) blockNode()  {}
func (Table) blockNode()      {}
func (PageBreak) blockNode()  {}
func (Spacer) blockNode()     {}

// Document is an ordered sequence of blocks, built fresh per report
// generation and discarded after serialization.
type Document struct {
	Meta   Metadata
	Blocks []Block
}

func (d *Document) add(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// FindTable returns the first table that directly follows a heading
// with the given text. Used to read report content back out of the
// document model.
func (d *Document) FindTable(heading string) (Table, bool) {
	for i, b := range d.Blocks {
		h, ok := b.(Heading)
		if !ok || h.Text != heading {
			continue
		}
		for _, rest := range d.Blocks[i+1:] {
			if t, ok := rest.(Table); ok {
				return t, true
			}
			if _, ok := rest.(Heading); ok {
				break
			}
		}
	}
	return Table{}, false
}

// RenderError indicates the results object violated the rendering
// contract; it names the block (and column, when applicable) that
// could not be built.
type RenderError struct {
	Block  string
	Column string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("render %s (column %q): %v", e.Block, e.Column, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Block, e.Err)
}
func (e *RenderError) Unwrap() error { return e.Err }

// SerializeError indicates an I/O failure writing the output file. The
// destination path is never left partially written.
type SerializeError struct {
	Path string
	Err  error
}

func (e *SerializeError) Error() string { return fmt.Sprintf("write report %s: %v", e.Path, e.Err) }
func (e *SerializeError) Unwrap() error { return e.Err }
