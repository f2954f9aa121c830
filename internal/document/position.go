package document

import "fmt"

// Position locates a character in a document as a paragraph index and a
// rune offset within that paragraph. The offset may equal the paragraph
// length, placing the cursor after the last character.
// Position is an immutable value type ordered lexicographically.
type Position struct {
	Para   int
	Offset int
}

// NewPosition creates a position at the given paragraph and offset.
func NewPosition(para, offset int) Position {
	return Position{Para: para, Offset: offset}
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Para != other.Para {
		if p.Para < other.Para {
			return -1
		}
		return 1
	}
	if p.Offset != other.Offset {
		if p.Offset < other.Offset {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Equals returns true if both positions address the same character.
func (p Position) Equals(other Position) bool {
	return p.Para == other.Para && p.Offset == other.Offset
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("Position(%d:%d)", p.Para, p.Offset)
}
