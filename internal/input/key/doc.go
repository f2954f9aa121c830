// Package key provides the keyboard event model for the editor.
//
// This package defines the fundamental types for representing keyboard
// input:
//
//   - Key: identifies a keyboard key (special keys or runes)
//   - Modifier: represents modifier keys (Ctrl, Alt, Shift)
//   - Event: a single key press with its modifiers
//
// Key specifications for bindings are written in a compact hyphenated
// form: "a", "Enter", "C-s", "A-b", "S-Down". Terminal-specific
// decoding into Events lives in the term package; this package is pure
// data.
package key
