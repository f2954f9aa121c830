package document

import "strings"

// Selection is a span of document text. Anchor is where the selection
// started; Head is the endpoint the user is extending. The endpoints are
// kept in the order they were set and normalized at read time, so a
// backward drag selects the same text as a forward one.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Head   Position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor.Equals(s.Head)
}

// Start returns the earlier endpoint in document order.
func (s Selection) Start() Position {
	if s.Head.Before(s.Anchor) {
		return s.Head
	}
	return s.Anchor
}

// End returns the later endpoint in document order.
func (s Selection) End() Position {
	if s.Head.Before(s.Anchor) {
		return s.Anchor
	}
	return s.Head
}

// StartSelection begins a selection with both endpoints at the cursor.
// Any previous selection is discarded.
func (d *Document) StartSelection() {
	sel := NewSelection(d.cursor, d.cursor)
	d.selection = &sel
}

// UpdateSelectionEnd moves the selection head to the cursor, leaving the
// anchor where the selection began. Without an active selection it is a
// no-op.
func (d *Document) UpdateSelectionEnd() {
	if d.selection == nil {
		return
	}
	sel := NewSelection(d.selection.Anchor, d.cursor)
	d.selection = &sel
}

// ClearSelection drops the active selection, if any.
func (d *Document) ClearSelection() {
	d.selection = nil
}

// HasSelection returns true while a selection is active, even one with no
// extent yet.
func (d *Document) HasSelection() bool {
	return d.selection != nil
}

// SelectionRange returns the active selection's endpoints in document
// order, clamped to the current paragraph list. The bool is false when no
// selection is active.
//
// Clamping matters because a selection can transiently outlive a
// structural change made by another operation; indexing paragraphs with a
// stale endpoint would be a crash, not a rendering glitch.
func (d *Document) SelectionRange() (Position, Position, bool) {
	if d.selection == nil {
		return Position{}, Position{}, false
	}
	start := d.clamp(d.selection.Start())
	end := d.clamp(d.selection.End())
	return start, end, true
}

// SelectedText returns the text covered by the active selection, with
// paragraph breaks rendered as newlines. Forward and backward selections
// over the same span return identical text. Returns "" when no selection
// is active or the selection is empty.
func (d *Document) SelectedText() string {
	start, end, ok := d.SelectionRange()
	if !ok || start.Equals(end) {
		return ""
	}
	if start.Para == end.Para {
		return runeSlice(d.paragraphs[start.Para], start.Offset, end.Offset)
	}
	parts := make([]string, 0, end.Para-start.Para+1)
	parts = append(parts, runeSlice(d.paragraphs[start.Para], start.Offset, runeLen(d.paragraphs[start.Para])))
	for i := start.Para + 1; i < end.Para; i++ {
		parts = append(parts, d.paragraphs[i])
	}
	parts = append(parts, runeSlice(d.paragraphs[end.Para], 0, end.Offset))
	return strings.Join(parts, "\n")
}

// DeleteSelection removes the selected text, merging the partial first and
// last paragraphs and dropping every fully covered paragraph between them.
// The cursor moves to the selection start and the selection is cleared.
// Without an active selection it is a no-op.
func (d *Document) DeleteSelection() {
	start, end, ok := d.SelectionRange()
	d.selection = nil
	if !ok || start.Equals(end) {
		return
	}

	first := d.paragraphs[start.Para]
	last := d.paragraphs[end.Para]
	merged := runeSlice(first, 0, start.Offset) + runeSlice(last, end.Offset, runeLen(last))

	tail := d.paragraphs[end.Para+1:]
	d.paragraphs = append(d.paragraphs[:start.Para], merged)
	d.paragraphs = append(d.paragraphs, tail...)

	d.cursor = start
	d.dirty = true
	d.edited(start.Para, -(end.Para - start.Para))
}
