package document

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// WordCount returns the number of words in the document per Unicode word
// segmentation, counting only segments that contain a letter or digit so
// punctuation runs and spaces are not words.
func (d *Document) WordCount() int {
	count := 0
	for _, para := range d.paragraphs {
		state := -1
		var word string
		rest := para
		for len(rest) > 0 {
			word, rest, state = uniseg.FirstWordInString(rest, state)
			if isWord(word) {
				count++
			}
		}
	}
	return count
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
