package view

import "github.com/ljosa/pagemark/internal/document"

// MoveCursorDown moves the cursor one visual line down, landing on the
// column it last had after a horizontal move, clamped to the target
// line's length. Page-break rows are stepped over. Past the window edge
// the next document line is resolved directly and the render loop
// re-centers on it. At the document end the motion is a no-op.
func (v *Viewport) MoveCursorDown() {
	f := v.frame
	for r := f.CursorRow + 1; r < len(f.Rows); r++ {
		row := f.Rows[r]
		if row.PageBreak {
			continue
		}
		v.moveTo(row.Para, row.Line)
		return
	}

	last := lastContentRow(f.Rows)
	if last == nil {
		return
	}
	para, line := last.Para, last.Line+1
	if line >= v.layout(para).LineCount() {
		para++
		line = 0
		if para >= v.doc.ParaCount() {
			return
		}
	}
	v.moveTo(para, line)
}

// MoveCursorUp is the mirror of MoveCursorDown. At the document start
// the motion is a no-op.
func (v *Viewport) MoveCursorUp() {
	f := v.frame
	for r := f.CursorRow - 1; r >= 0; r-- {
		row := f.Rows[r]
		if row.PageBreak {
			continue
		}
		v.moveTo(row.Para, row.Line)
		return
	}

	para, line := v.startPara, v.startLine-1
	if line < 0 {
		para--
		if para < 0 {
			return
		}
		line = v.layout(para).LineCount() - 1
	}
	v.moveTo(para, line)
}

// PageDown moves the cursor one screenful down, line by line so the
// desired column and page-break handling match single-line motion.
func (v *Viewport) PageDown() {
	for i := 1; i < v.rows; i++ {
		v.MoveCursorDown()
	}
}

// PageUp moves the cursor one screenful up.
func (v *Viewport) PageUp() {
	for i := 1; i < v.rows; i++ {
		v.MoveCursorUp()
	}
}

// moveTo places the cursor on the given wrapped line at the desired
// column and re-renders, which re-centers when the line lies outside the
// window.
func (v *Viewport) moveTo(para, line int) {
	l := v.layout(para)
	col := v.desiredX
	if n := l.LineLen(line); col > n {
		col = n
	}
	v.doc.SetCursor(document.Position{Para: para, Offset: l.LineStart(line) + col})
	v.Render()
}

func lastContentRow(rows []Row) *Row {
	for i := len(rows) - 1; i >= 0; i-- {
		if !rows[i].PageBreak {
			return &rows[i]
		}
	}
	return nil
}
