package document

import "strings"

// KillLine deletes from the cursor to the end of the visual line under
// it. A cursor already at the line's end eats the space that joins the
// next word instead; at the paragraph end the next paragraph is pulled
// up. Returns the deleted text, "" when nothing was deleted.
func (d *Document) KillLine() string {
	d.selection = nil
	p := d.cursor
	para := d.paragraphs[p.Para]
	n := runeLen(para)

	if p.Offset >= n {
		if p.Para+1 >= len(d.paragraphs) {
			return ""
		}
		d.paragraphs[p.Para] = para + d.paragraphs[p.Para+1]
		d.paragraphs = append(d.paragraphs[:p.Para+1], d.paragraphs[p.Para+2:]...)
		d.dirty = true
		d.edited(p.Para, -1)
		return "\n"
	}

	l := d.layoutAt(p.Para)
	line := l.LineFor(p.Offset)
	end := l.LineStart(line) + l.LineLen(line)
	if end <= p.Offset {
		end = p.Offset + 1
	}
	killed := runeSlice(para, p.Offset, end)
	d.paragraphs[p.Para] = runeSlice(para, 0, p.Offset) + runeSlice(para, end, n)
	d.dirty = true
	d.edited(p.Para, 0)
	return killed
}

// CenterLine centers the cursor's paragraph within the text width by
// replacing its surrounding whitespace with computed leading padding.
// Paragraphs with no text or too wide to fit a single visual line are
// left alone. The cursor keeps its place relative to the text.
func (d *Document) CenterLine() {
	p := d.cursor
	para := d.paragraphs[p.Para]
	stripped := strings.TrimSpace(para)
	width := d.view.TextWidth()
	n := runeLen(stripped)
	if n == 0 || n >= width {
		return
	}
	oldLead := runeLen(para) - runeLen(strings.TrimLeft(para, " "))
	pad := (width - n) / 2
	d.paragraphs[p.Para] = strings.Repeat(" ", pad) + stripped
	d.cursor = d.clamp(Position{Para: p.Para, Offset: p.Offset + pad - oldLead})
	d.dirty = true
	d.edited(p.Para, 0)
}
