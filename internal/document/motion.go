package document

import "github.com/ljosa/pagemark/internal/wrap"

// LeftChar moves the cursor one character left, crossing to the end of
// the previous paragraph at a paragraph start. At the document start it
// is a no-op.
func (d *Document) LeftChar() {
	p := d.cursor
	switch {
	case p.Offset > 0:
		d.cursor.Offset--
	case p.Para > 0:
		d.cursor = Position{Para: p.Para - 1, Offset: runeLen(d.paragraphs[p.Para-1])}
	}
	d.moved()
}

// RightChar moves the cursor one character right, crossing to the start
// of the next paragraph at a paragraph end. At the document end it is a
// no-op.
func (d *Document) RightChar() {
	p := d.cursor
	switch {
	case p.Offset < runeLen(d.paragraphs[p.Para]):
		d.cursor.Offset++
	case p.Para+1 < len(d.paragraphs):
		d.cursor = Position{Para: p.Para + 1}
	}
	d.moved()
}

// RightWord moves to the start of the next word: past the run of
// non-space characters under the cursor, then past any spaces after it.
// At a paragraph end it crosses to the start of the next paragraph.
func (d *Document) RightWord() {
	p := d.cursor
	runes := []rune(d.paragraphs[p.Para])
	if p.Offset >= len(runes) {
		if p.Para+1 < len(d.paragraphs) {
			d.cursor = Position{Para: p.Para + 1}
		}
		d.moved()
		return
	}
	x := p.Offset
	for x < len(runes) && runes[x] != ' ' {
		x++
	}
	for x < len(runes) && runes[x] == ' ' {
		x++
	}
	d.cursor.Offset = x
	d.moved()
}

// LeftWord moves to the start of the current or previous word: one step
// back, then backward over spaces, then backward over the word itself.
// At a paragraph start it crosses to the end of the previous paragraph.
func (d *Document) LeftWord() {
	p := d.cursor
	if p.Offset == 0 {
		if p.Para > 0 {
			d.cursor = Position{Para: p.Para - 1, Offset: runeLen(d.paragraphs[p.Para-1])}
		}
		d.moved()
		return
	}
	runes := []rune(d.paragraphs[p.Para])
	x := p.Offset - 1
	for x > 0 && runes[x] == ' ' {
		x--
	}
	for x > 0 && runes[x-1] != ' ' {
		x--
	}
	d.cursor.Offset = x
	d.moved()
}

// MoveBeginningOfLine moves to column 0 of the visual line under the
// cursor. Like all visual-line operations it works on the wrapped line,
// not the logical paragraph.
func (d *Document) MoveBeginningOfLine() {
	l := d.layoutAt(d.cursor.Para)
	d.cursor.Offset = l.LineStart(l.LineFor(d.cursor.Offset))
	d.moved()
}

// MoveEndOfLine moves past the last character of the visual line under
// the cursor.
func (d *Document) MoveEndOfLine() {
	l := d.layoutAt(d.cursor.Para)
	line := l.LineFor(d.cursor.Offset)
	d.cursor.Offset = l.LineStart(line) + l.LineLen(line)
	d.moved()
}

// layoutAt wraps paragraph i at the view's text width.
func (d *Document) layoutAt(i int) wrap.Layout {
	return wrap.Wrap(d.paragraphs[i], d.view.TextWidth())
}
