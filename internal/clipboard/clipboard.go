// Package clipboard moves text between the editor and the system
// clipboard. Every write is mirrored to an internal buffer so cut,
// copy, and paste keep working inside the editor when no system
// clipboard is available (headless sessions, missing xclip).
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard is the editor's copy/paste buffer.
type Clipboard struct {
	buffer   string
	internal bool
}

// New returns a clipboard backed by the system clipboard when one is
// available.
func New() *Clipboard {
	return &Clipboard{internal: clipboard.Unsupported}
}

// NewInternal returns a clipboard that never touches the system
// clipboard. Used in tests.
func NewInternal() *Clipboard {
	return &Clipboard{internal: true}
}

// Write stores text for later pasting. The internal buffer always
// receives the text; an error means only that the system clipboard
// could not be updated.
func (c *Clipboard) Write(text string) error {
	c.buffer = text
	if c.internal {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard unavailable: %w", err)
	}
	return nil
}

// Read returns the text to paste, preferring the system clipboard so
// text copied in other programs comes through.
func (c *Clipboard) Read() string {
	if !c.internal {
		if text, err := clipboard.ReadAll(); err == nil && text != "" {
			return text
		}
	}
	return c.buffer
}
