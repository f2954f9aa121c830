// Package view renders a document into terminal rows and maintains the
// mapping between logical cursor positions and visual screen coordinates
// under word wrap, synthetic page-break rows, and window scrolling.
package view

import (
	"fmt"
	"strings"

	"github.com/ljosa/pagemark/internal/document"
	"github.com/ljosa/pagemark/internal/print"
	"github.com/ljosa/pagemark/internal/wrap"
)

// Viewport owns a window over the document's paragraphs and produces the
// frame the terminal draws. The window and frame are pure derived state:
// both can be rebuilt from the document and cursor at any time.
type Viewport struct {
	doc   *document.Document
	rows  int
	cols  int
	width int

	startPara int
	startLine int
	endPara   int

	desiredX int
	frame    Frame
}

// New creates a viewport over doc. rows and cols are the screen area
// available for text; width is the requested text width, clamped to the
// screen columns.
func New(doc *document.Document, rows, cols, width int) *Viewport {
	v := &Viewport{doc: doc}
	v.SetSize(rows, cols, width)
	return v
}

// SetSize updates the screen geometry. The effective wrap width never
// exceeds the screen columns and never drops below 1.
func (v *Viewport) SetSize(rows, cols, width int) {
	if rows < 0 {
		rows = 0
	}
	if width > cols {
		width = cols
	}
	if width < 1 {
		width = 1
	}
	v.rows, v.cols, v.width = rows, cols, width
}

// TextWidth returns the effective wrap width.
func (v *Viewport) TextWidth() int {
	return v.width
}

// Frame returns the most recently rendered frame.
func (v *Viewport) Frame() *Frame {
	return &v.frame
}

// Window returns the window start as a paragraph index and a line offset
// within that paragraph.
func (v *Viewport) Window() (para, line int) {
	return v.startPara, v.startLine
}

// EndPara returns one past the last paragraph touched by the last render.
func (v *Viewport) EndPara() int {
	return v.endPara
}

// CursorLine returns the absolute document line the cursor sits on,
// counting wrapped lines from the top of the document. Page numbering
// and the status display derive from it.
func (v *Viewport) CursorLine() int {
	cur := v.doc.Cursor()
	l := v.layout(cur.Para)
	return v.docLineAt(cur.Para, l.LineFor(cur.Offset))
}

// Render rebuilds the visible rows, the visual cursor position, and the
// selection highlights. When the cursor lies outside the window the
// window is recomputed to center the cursor's document line and the rows
// are rebuilt; for viewports at least three rows tall one such retry
// always suffices. A cursor still outside after the final fallback is a
// defect in the mapping arithmetic, not a recoverable condition.
func (v *Viewport) Render() {
	if v.rows <= 0 {
		v.frame = Frame{}
		return
	}
	v.clampWindow()
	frame, inside := v.build()
	if !inside {
		v.center()
		frame, inside = v.build()
	}
	if !inside {
		// A viewport of one or two rows can fail the centered attempt
		// when a page break lands between the middle and the cursor.
		// Pinning the cursor line to the top row always succeeds.
		cur := v.doc.Cursor()
		v.startPara = cur.Para
		v.startLine = v.layout(cur.Para).LineFor(cur.Offset)
		frame, inside = v.build()
	}
	if !inside {
		panic("view: cursor outside window after recentering")
	}
	v.frame = frame
}

// ParagraphsChanged shifts the window when an edit lies entirely above
// it, keeping the same content visible without a rebuild. Any edit that
// touches the window or follows it re-renders.
func (v *Viewport) ParagraphsChanged(index, delta int) {
	touched := index
	if delta < 0 {
		touched = index - delta
	}
	if touched < v.startPara {
		v.startPara += delta
		v.endPara += delta
		return
	}
	v.Render()
}

// UpdateDesiredColumn re-anchors the column vertical motion aims for,
// from the cursor's current position. Horizontal motions and edits call
// this; vertical motions deliberately do not, so a down-then-up pair
// returns to the exact starting column.
func (v *Viewport) UpdateDesiredColumn() {
	cur := v.doc.Cursor()
	l := v.layout(cur.Para)
	v.desiredX = cur.Offset - l.LineStart(l.LineFor(cur.Offset))
}

// build walks paragraphs from the window start, emitting wrapped lines
// and page-break rows until the rows fill or the document is exhausted,
// then maps the cursor onto the rows. The bool reports whether the
// cursor landed inside the window.
func (v *Viewport) build() (Frame, bool) {
	rows := make([]Row, 0, v.rows+1)
	para := v.startPara
	line := v.startLine
	l := v.layout(para)
	docLine := v.docLineAt(para, line)

	for len(rows) < v.rows {
		if line >= l.LineCount() {
			para++
			line = 0
			if para >= v.doc.ParaCount() {
				break
			}
			l = v.layout(para)
			continue
		}
		rows = append(rows, v.contentRow(para, line, l))
		docLine++
		line++
		if docLine%print.TextRows == 0 && len(rows) < v.rows && v.moreContent(para, line, l) {
			rows = append(rows, v.breakRow(docLine/print.TextRows+1))
		}
	}
	v.endPara = para + 1
	if para >= v.doc.ParaCount() {
		v.endPara = v.doc.ParaCount()
	}

	cur := v.doc.Cursor()
	cl := v.layout(cur.Para)
	cline := cl.LineFor(cur.Offset)
	ccol := cur.Offset - cl.LineStart(cline)

	crow := -1
	for i, r := range rows {
		if !r.PageBreak && r.Para == cur.Para && r.Line == cline {
			crow = i
			break
		}
	}
	if crow < 0 && ccol == 0 && len(rows) == v.rows && v.rows > 0 {
		// The cursor sits at column 0 of the wrapped line just below a
		// full window, as after typing at the bottom edge. Give it an
		// empty row instead of scrolling.
		last := rows[len(rows)-1]
		if !last.PageBreak && last.Para == cur.Para && last.Line == cline-1 {
			edge := v.contentRow(cur.Para, cline, cl)
			edge.Text = strings.Repeat(" ", v.cols)
			edge.Len = 0
			crow = len(rows)
			rows = append(rows, edge)
		}
	}
	if crow < 0 {
		return Frame{Rows: rows}, false
	}

	col := ccol + rows[crow].Indent
	if col >= v.cols {
		col = v.cols - 1
	}
	frame := Frame{Rows: rows, CursorRow: crow, CursorCol: col}
	frame.Highlights = v.highlights(rows)
	return frame, true
}

// center recomputes the window so the cursor's document line sits in the
// middle row, borrowing lines from earlier paragraphs while the offset
// is negative. The backtrack is bounded by the viewport height, never by
// the document length.
func (v *Viewport) center() {
	cur := v.doc.Cursor()
	line := v.layout(cur.Para).LineFor(cur.Offset) - v.rows/2
	para := cur.Para
	for line < 0 && para > 0 {
		para--
		line += v.layout(para).LineCount()
	}
	if line < 0 {
		line = 0
	}
	v.startPara, v.startLine = para, line
}

// clampWindow pulls a stale window back inside the paragraph list.
func (v *Viewport) clampWindow() {
	if v.startPara < 0 {
		v.startPara = 0
	}
	if n := v.doc.ParaCount(); v.startPara >= n {
		v.startPara = n - 1
		v.startLine = 0
	}
	if v.startLine < 0 {
		v.startLine = 0
	}
	if n := v.layout(v.startPara).LineCount(); v.startLine >= n {
		v.startLine = n - 1
	}
}

// docLineAt returns the absolute document line of line within paragraph
// para, counting the wrapped lines of every earlier paragraph. Page
// breaks do not exist in this space.
func (v *Viewport) docLineAt(para, line int) int {
	n := line
	for i := 0; i < para; i++ {
		n += v.layout(i).LineCount()
	}
	return n
}

// moreContent reports whether any content line follows (para, line).
func (v *Viewport) moreContent(para, line int, l wrap.Layout) bool {
	return line < l.LineCount() || para+1 < v.doc.ParaCount()
}

func (v *Viewport) layout(para int) wrap.Layout {
	return wrap.Wrap(v.doc.Para(para), v.width)
}

func (v *Viewport) contentRow(para, line int, l wrap.Layout) Row {
	indent := 0
	if line > 0 {
		indent = l.Indent
	}
	return Row{
		Text:   padRow(strings.Repeat(" ", indent)+l.Lines[line], v.cols),
		Para:   para,
		Line:   line,
		Start:  l.LineStart(line),
		Len:    l.LineLen(line),
		Indent: indent,
	}
}

func (v *Viewport) breakRow(page int) Row {
	label := fmt.Sprintf("──── Page %d ────", page)
	pad := (v.cols - len([]rune(label))) / 2
	if pad < 0 {
		pad = 0
	}
	return Row{
		Text:      padRow(strings.Repeat(" ", pad)+label, v.cols),
		PageBreak: true,
		Para:      -1,
		Line:      -1,
	}
}

// padRow pads s with spaces to exactly width runes, truncating when it
// is too long.
func padRow(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	if len(runes) < width {
		return s + strings.Repeat(" ", width-len(runes))
	}
	return s
}
