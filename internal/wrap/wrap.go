// Package wrap provides word wrapping for fixed-width text layout.
//
// A paragraph is a single string with no embedded newline. Wrap breaks it
// into visual lines no wider than the requested column width and reports,
// for every line, how many source characters the paragraph has consumed up
// to and including that line. Those cumulative boundaries are what the
// viewport uses to convert between character offsets and screen positions,
// so their exact values matter as much as the line text itself.
package wrap

// Layout is the wrapped form of a single paragraph.
type Layout struct {
	// Lines holds the visual lines in order. Never empty: an empty
	// paragraph yields one empty line.
	Lines []string

	// Bounds holds one cumulative source-character count per line. For a
	// line that was separated from its successor by a space, the count
	// includes that space, so Bounds[i] is the offset of the first
	// character of line i+1. The final entry always equals the paragraph
	// length in runes.
	Bounds []int

	// Indent is the hanging-indent width in columns, or 0 when the
	// paragraph carries no list marker. Continuation lines (index >= 1)
	// are displayed shifted right by this amount; Bounds are unaffected.
	Indent int
}

// LineCount returns the number of visual lines.
func (l Layout) LineCount() int {
	return len(l.Lines)
}

// LineStart returns the source-rune offset of the first character of line i.
func (l Layout) LineStart(i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(l.Bounds) {
		i = len(l.Bounds)
	}
	return l.Bounds[i-1]
}

// LineLen returns the length in runes of line i.
func (l Layout) LineLen(i int) int {
	if i < 0 || i >= len(l.Lines) {
		return 0
	}
	return len([]rune(l.Lines[i]))
}

// LineFor returns the index of the visual line on which a cursor at source
// offset x sits. An offset exactly on a wrap boundary belongs to the
// following line, so a cursor at a wrap point renders at column 0 of the
// next row rather than past the end of the previous one. The paragraph-end
// offset maps to the last line.
func (l Layout) LineFor(x int) int {
	for i, b := range l.Bounds {
		if x < b {
			return i
		}
	}
	return len(l.Bounds) - 1
}

// Wrap breaks paragraph text into lines of at most width columns.
// Width must be at least 1; Wrap does not validate it.
//
// Words are the result of splitting on single ASCII spaces, so consecutive
// spaces produce empty words. Packing is greedy: a word joins the current
// line only if line + joining space + word stays strictly under width.
// Words of width or more characters are hard-broken into exact width-sized
// chunks, each its own line.
func Wrap(text string, width int) Layout {
	words := splitWords([]rune(text))

	b := builder{width: width}
	current := b.hardBreak(words[0])
	for _, word := range words[1:] {
		if len(current)+1+len(word) < width {
			current = append(current, ' ')
			current = append(current, word...)
			continue
		}
		b.closeLine(current, true)
		current = b.hardBreak(word)
	}
	b.closeLine(current, false)

	return Layout{Lines: b.lines, Bounds: b.bounds, Indent: HangingIndent(text)}
}

// splitWords splits on single spaces, preserving empty words so that runs
// of spaces survive a wrap/rejoin round trip. Always returns at least one
// word.
func splitWords(runes []rune) [][]rune {
	words := make([][]rune, 0, 8)
	start := 0
	for i, r := range runes {
		if r == ' ' {
			words = append(words, runes[start:i])
			start = i + 1
		}
	}
	return append(words, runes[start:])
}

// builder accumulates lines and their cumulative character boundaries.
type builder struct {
	width  int
	total  int
	lines  []string
	bounds []int
}

// closeLine finalizes one visual line. When the line was cut at a word
// boundary, spaceFollows credits the joining space that separated it from
// the next word, so the boundary lands on the next line's first character.
func (b *builder) closeLine(line []rune, spaceFollows bool) {
	b.total += len(line)
	if spaceFollows {
		b.total++
	}
	b.lines = append(b.lines, string(line))
	b.bounds = append(b.bounds, b.total)
}

// hardBreak slices exact width-sized chunks off word while it is at least
// width wide, emitting each chunk as its own line. The remainder (possibly
// empty) becomes the new current line.
func (b *builder) hardBreak(word []rune) []rune {
	for len(word) >= b.width {
		b.closeLine(word[:b.width], false)
		word = word[b.width:]
	}
	current := make([]rune, len(word), b.width+1)
	copy(current, word)
	return current
}
