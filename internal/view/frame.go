package view

// Row is one screen row of a rendered frame.
type Row struct {
	// Text is the display text, padded or truncated to exactly the
	// frame's column count.
	Text string

	// PageBreak marks synthetic page-boundary rows, which carry no
	// document text.
	PageBreak bool

	// Para and Line identify the wrapped paragraph line a content row
	// shows. Page-break rows hold -1 for both.
	Para int
	Line int

	// Start is the source rune offset of the row's first character.
	Start int

	// Len is the rune length of the line text, before indent and
	// padding.
	Len int

	// Indent is the hanging-indent shift applied on screen. Zero on a
	// paragraph's first line.
	Indent int
}

// Span is a highlighted column range on one frame row, end exclusive.
type Span struct {
	Row   int
	Start int
	End   int
}

// Frame is the product of one render: the rows to draw, the visual
// cursor, and the selection highlights. It is rebuilt on every render
// and never persisted across renders.
type Frame struct {
	Rows       []Row
	CursorRow  int
	CursorCol  int
	Highlights []Span
}
