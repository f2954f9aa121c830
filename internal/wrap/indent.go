package wrap

// nbsp is the Unicode no-break space, usable as an invisible list marker.
const nbsp = ' '

// HangingIndent reports the hanging-indent width in columns for a
// paragraph, or 0 when it carries no list marker.
//
// A marker is recognized after any leading spaces: "- ", one or more
// digits followed by ". ", or a no-break space followed by a single
// regular space. The indent spans the leading spaces, the marker, and the
// one trailing space the marker requires. A second space after the marker
// disables the indent so manually spaced-out text is left alone.
func HangingIndent(text string) int {
	runes := []rune(text)
	lead := 0
	for lead < len(runes) && runes[lead] == ' ' {
		lead++
	}
	marker := markerLen(runes[lead:])
	if marker == 0 {
		return 0
	}
	if lead+marker < len(runes) && runes[lead+marker] == ' ' {
		return 0
	}
	return lead + marker
}

// markerLen returns the rune length of a list marker including its
// required trailing space, or 0 when runes does not begin with one.
func markerLen(runes []rune) int {
	if len(runes) >= 2 && (runes[0] == '-' || runes[0] == nbsp) && runes[1] == ' ' {
		return 2
	}
	digits := 0
	for digits < len(runes) && runes[digits] >= '0' && runes[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits+1 >= len(runes) {
		return 0
	}
	if runes[digits] == '.' && runes[digits+1] == ' ' {
		return digits + 2
	}
	return 0
}
