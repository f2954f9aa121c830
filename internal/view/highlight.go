package view

import "github.com/ljosa/pagemark/internal/document"

// highlights derives per-row highlight spans from the document's
// selection. Page-break rows never participate. A row overlapping the
// selection gets one span clamped to its text extent and shifted right
// by its hanging indent, so highlights align with the indented text.
func (v *Viewport) highlights(rows []Row) []Span {
	start, end, ok := v.doc.SelectionRange()
	if !ok || start.Equals(end) {
		return nil
	}
	var spans []Span
	for i, r := range rows {
		lo, hi, ok := rowOverlap(r, start, end)
		if !ok {
			continue
		}
		if hi > v.cols {
			hi = v.cols
		}
		if lo >= hi {
			continue
		}
		spans = append(spans, Span{Row: i, Start: lo, End: hi})
	}
	return spans
}

// rowOverlap intersects the normalized selection [start, end) with the
// characters shown on row r, returning the highlighted column range.
func rowOverlap(r Row, start, end document.Position) (int, int, bool) {
	if r.PageBreak || start.Para > r.Para || end.Para < r.Para {
		return 0, 0, false
	}
	lo := r.Start
	if start.Para == r.Para && start.Offset > lo {
		lo = start.Offset
	}
	hi := r.Start + r.Len
	if end.Para == r.Para && end.Offset < hi {
		hi = end.Offset
	}
	if lo >= hi {
		return 0, 0, false
	}
	return lo - r.Start + r.Indent, hi - r.Start + r.Indent, true
}
