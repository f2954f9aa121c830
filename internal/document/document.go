// Package document implements the logical text model: an ordered list of
// paragraphs plus the cursor and selection operating on it. Paragraphs
// never contain newlines; positions are paragraph index and rune offset.
//
// All operations are total over valid cursor states. They clamp at
// document boundaries instead of returning errors, so callers never
// handle a failed motion or edit.
package document

import (
	"strings"
	"unicode/utf8"
)

// View is the display surface a Document drives. The document holds a
// non-owning reference and notifies it after every mutation; it never
// manages the view's lifecycle. Production code installs a terminal
// viewport, tests install lightweight fakes.
type View interface {
	// Render rebuilds the visible rows from the current document state.
	Render()

	// ParagraphsChanged reports a structural edit at paragraph index that
	// changed the paragraph count by delta. An edit entirely above the
	// visible window only shifts the window's indices; anything else
	// rebuilds the rows.
	ParagraphsChanged(index, delta int)

	// UpdateDesiredColumn re-anchors the column that vertical motion
	// tries to return to, from the cursor's current visual column.
	UpdateDesiredColumn()

	// TextWidth returns the wrap width for visual-line operations.
	TextWidth() int
}

// Document owns the paragraph list, cursor, and selection. It is not safe
// for concurrent use; the editor runs it from a single event loop.
type Document struct {
	paragraphs []string
	cursor     Position
	selection  *Selection
	view       View
	dirty      bool
}

// New creates a document holding a single empty paragraph.
func New() *Document {
	return &Document{paragraphs: []string{""}}
}

// SetView installs the display notified after mutations.
func (d *Document) SetView(v View) {
	d.view = v
}

// ParaCount returns the number of paragraphs, always at least 1.
func (d *Document) ParaCount() int {
	return len(d.paragraphs)
}

// Para returns paragraph i, or "" when i is out of range.
func (d *Document) Para(i int) string {
	if i < 0 || i >= len(d.paragraphs) {
		return ""
	}
	return d.paragraphs[i]
}

// Cursor returns the current cursor position.
func (d *Document) Cursor() Position {
	return d.cursor
}

// SetCursor moves the cursor, clamped into the document. It does not
// notify the view; callers that need a redraw trigger one themselves.
func (d *Document) SetCursor(p Position) {
	d.cursor = d.clamp(p)
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool {
	return d.dirty
}

// MarkClean records that the current state has been persisted.
func (d *Document) MarkClean() {
	d.dirty = false
}

// Text returns the whole document as UTF-8 text, paragraphs joined by
// newlines. No trailing newline is added or removed, so Text and SetText
// round-trip exactly.
func (d *Document) Text() string {
	return strings.Join(d.paragraphs, "\n")
}

// SetText replaces the whole document, resetting cursor, selection, and
// the dirty flag. A trailing newline in text yields a final empty
// paragraph.
func (d *Document) SetText(text string) {
	d.paragraphs = strings.Split(text, "\n")
	d.cursor = Position{}
	d.selection = nil
	d.dirty = false
	d.render()
}

// InsertText inserts text at the cursor. Embedded newlines split the
// current paragraph: the first fragment joins the text before the cursor,
// the last joins the text after it, and the cursor lands at the end of
// the inserted content. Any active selection is dropped first.
func (d *Document) InsertText(text string) {
	d.selection = nil
	p := d.cursor
	para := d.paragraphs[p.Para]
	before := runeSlice(para, 0, p.Offset)
	after := runeSlice(para, p.Offset, runeLen(para))

	fragments := strings.Split(text, "\n")
	last := len(fragments) - 1
	fragments[0] = before + fragments[0]
	endOffset := runeLen(fragments[last])
	fragments[last] += after

	if last == 0 {
		d.paragraphs[p.Para] = fragments[0]
	} else {
		spliced := make([]string, 0, len(d.paragraphs)+last)
		spliced = append(spliced, d.paragraphs[:p.Para]...)
		spliced = append(spliced, fragments...)
		spliced = append(spliced, d.paragraphs[p.Para+1:]...)
		d.paragraphs = spliced
	}

	d.cursor = Position{Para: p.Para + last, Offset: endOffset}
	d.dirty = true
	d.edited(p.Para, last)
}

// Backspace deletes the character before the cursor, or the active
// selection if there is one. At a paragraph start it merges the paragraph
// into the previous one; at the document start it is a no-op.
func (d *Document) Backspace() {
	if d.takeSelection() {
		return
	}
	p := d.cursor
	if p.Offset > 0 {
		para := d.paragraphs[p.Para]
		d.paragraphs[p.Para] = runeSlice(para, 0, p.Offset-1) + runeSlice(para, p.Offset, runeLen(para))
		d.cursor.Offset--
		d.dirty = true
		d.edited(p.Para, 0)
		return
	}
	if p.Para == 0 {
		return
	}
	prev := d.paragraphs[p.Para-1]
	d.cursor = Position{Para: p.Para - 1, Offset: runeLen(prev)}
	d.paragraphs[p.Para-1] = prev + d.paragraphs[p.Para]
	d.paragraphs = append(d.paragraphs[:p.Para], d.paragraphs[p.Para+1:]...)
	d.dirty = true
	d.edited(p.Para-1, -1)
}

// DeleteForward deletes the character under the cursor, or the active
// selection if there is one. At a paragraph end it merges the next
// paragraph into the current one; at the document end it is a no-op.
func (d *Document) DeleteForward() {
	if d.takeSelection() {
		return
	}
	p := d.cursor
	para := d.paragraphs[p.Para]
	if p.Offset < runeLen(para) {
		d.paragraphs[p.Para] = runeSlice(para, 0, p.Offset) + runeSlice(para, p.Offset+1, runeLen(para))
		d.dirty = true
		d.edited(p.Para, 0)
		return
	}
	if p.Para+1 >= len(d.paragraphs) {
		return
	}
	d.paragraphs[p.Para] = para + d.paragraphs[p.Para+1]
	d.paragraphs = append(d.paragraphs[:p.Para+1], d.paragraphs[p.Para+2:]...)
	d.dirty = true
	d.edited(p.Para, -1)
}

// takeSelection consumes a non-empty active selection by deleting it,
// reporting whether it did. An empty selection is just dropped.
func (d *Document) takeSelection() bool {
	if d.selection == nil {
		return false
	}
	if d.selection.IsEmpty() {
		d.selection = nil
		return false
	}
	d.DeleteSelection()
	return true
}

// clamp adjusts p to satisfy the position invariant against the current
// paragraph list.
func (d *Document) clamp(p Position) Position {
	if p.Para < 0 {
		p.Para = 0
	}
	if p.Para >= len(d.paragraphs) {
		p.Para = len(d.paragraphs) - 1
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if n := runeLen(d.paragraphs[p.Para]); p.Offset > n {
		p.Offset = n
	}
	return p
}

// render asks the view for a rebuild. Safe before a view is installed.
func (d *Document) render() {
	if d.view != nil {
		d.view.Render()
	}
}

// moved finishes a horizontal motion: redraw, then re-anchor the desired
// column for vertical moves.
func (d *Document) moved() {
	if d.view == nil {
		return
	}
	d.view.Render()
	d.view.UpdateDesiredColumn()
}

// edited finishes an edit at paragraph index that changed the paragraph
// count by delta.
func (d *Document) edited(index, delta int) {
	if d.view == nil {
		return
	}
	d.view.ParagraphsChanged(index, delta)
	d.view.UpdateDesiredColumn()
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// runeSlice returns s[from:to] in rune coordinates, clamping both ends.
func runeSlice(s string, from, to int) string {
	runes := []rune(s)
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	if from >= to {
		return ""
	}
	return string(runes[from:to])
}
