package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ljosa/pagemark/internal/print"
	"github.com/ljosa/pagemark/internal/term"
	"github.com/ljosa/pagemark/internal/view"
)

// draw paints the current frame: content rows, the status line on the
// bottom screen row, and the hardware cursor. A frame one row taller
// than the text area, as after typing at the bottom edge, is drawn
// scrolled up by the excess so the cursor's row stays above the status
// line.
func (ed *Editor) draw() {
	cols, rows := ed.screen.Size()
	ed.screen.Clear()

	f := ed.view.Frame()
	off := 0
	if textRows := rows - 1; textRows >= 0 && len(f.Rows) > textRows {
		off = len(f.Rows) - textRows
	}
	for i := off; i < len(f.Rows); i++ {
		ed.drawRow(i-off, f.Rows[i].Text, spansFor(f.Highlights, i))
	}

	if rows > 0 {
		term.DrawText(ed.screen, 0, rows-1, ed.statusText(cols), term.StyleReverse)
	}

	if len(f.Rows) > 0 && f.CursorRow >= off {
		runes := []rune(f.Rows[f.CursorRow].Text)
		col := f.CursorCol
		if col > len(runes) {
			col = len(runes)
		}
		ed.screen.ShowCursor(runewidth.StringWidth(string(runes[:col])), f.CursorRow-off)
	} else {
		ed.screen.HideCursor()
	}

	ed.screen.Show()
}

// drawRow paints one content row, switching to reverse video inside
// highlight spans. Span columns are rune indexes; the x advance follows
// display width so wide characters stay aligned.
func (ed *Editor) drawRow(y int, text string, spans []view.Span) {
	x := 0
	for i, r := range []rune(text) {
		style := term.StyleDefault
		for _, span := range spans {
			if i >= span.Start && i < span.End {
				style = term.StyleReverse
				break
			}
		}
		ed.screen.SetCell(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
}

func spansFor(spans []view.Span, row int) []view.Span {
	var out []view.Span
	for _, s := range spans {
		if s.Row == row {
			out = append(out, s)
		}
	}
	return out
}

// statusText composes the status line: file name and transient message
// on the left, position and word count on the right, padded to exactly
// cols display cells.
func (ed *Editor) statusText(cols int) string {
	left := " " + ed.fileName()
	if ed.doc.Dirty() {
		left += " *"
	}
	if ed.status != "" {
		left = " " + ed.status
	}

	line := ed.view.CursorLine()
	f := ed.view.Frame()
	right := fmt.Sprintf("page %d  ln %d, col %d  %d words ",
		line/print.TextRows+1, line%print.TextRows+1, f.CursorCol+1, ed.doc.WordCount())

	gap := cols - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		// Narrow screens drop the position display before the name.
		return runewidth.FillRight(runewidth.Truncate(left, cols, ""), cols)
	}
	return left + strings.Repeat(" ", gap) + right
}
