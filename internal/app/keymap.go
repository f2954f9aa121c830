package app

import (
	"github.com/ljosa/pagemark/internal/input/key"
)

// Command identifies an editor command.
type Command int

const (
	CmdNone Command = iota

	// Motion
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdWordLeft
	CmdWordRight
	CmdLineStart
	CmdLineEnd
	CmdPageUp
	CmdPageDown

	// Editing
	CmdNewline
	CmdBackspace
	CmdDelete
	CmdKillLine
	CmdCenterLine

	// Clipboard
	CmdCopy
	CmdCut
	CmdPaste

	// Session
	CmdSave
	CmdQuit
	CmdCancel
)

var commandNames = map[Command]string{
	CmdNone:       "none",
	CmdLeft:       "left",
	CmdRight:      "right",
	CmdUp:         "up",
	CmdDown:       "down",
	CmdWordLeft:   "word-left",
	CmdWordRight:  "word-right",
	CmdLineStart:  "line-start",
	CmdLineEnd:    "line-end",
	CmdPageUp:     "page-up",
	CmdPageDown:   "page-down",
	CmdNewline:    "newline",
	CmdBackspace:  "backspace",
	CmdDelete:     "delete",
	CmdKillLine:   "kill-line",
	CmdCenterLine: "center-line",
	CmdCopy:       "copy",
	CmdCut:        "cut",
	CmdPaste:      "paste",
	CmdSave:       "save",
	CmdQuit:       "quit",
	CmdCancel:     "cancel",
}

// String returns the command's name for logs and diagnostics.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsMotion reports whether the command moves the cursor without
// changing text. Motions participate in shift-selection.
func (c Command) IsMotion() bool {
	return c >= CmdLeft && c <= CmdPageDown
}

// Binding is the action a key chord maps to.
type Binding struct {
	Cmd Command

	// Extend holds the selection through a motion instead of
	// clearing it. Only meaningful on motion commands.
	Extend bool
}

// Keymap maps decoded key events to bindings. Plain printable runes are
// deliberately absent: any unmapped character key inserts itself.
type Keymap map[key.Event]Binding

// defaultBindings is the built-in chord table, keyed by key
// specification strings.
var defaultBindings = map[string]Binding{
	"Left":  {Cmd: CmdLeft},
	"Right": {Cmd: CmdRight},
	"Up":    {Cmd: CmdUp},
	"Down":  {Cmd: CmdDown},

	"S-Left":  {Cmd: CmdLeft, Extend: true},
	"S-Right": {Cmd: CmdRight, Extend: true},
	"S-Up":    {Cmd: CmdUp, Extend: true},
	"S-Down":  {Cmd: CmdDown, Extend: true},

	"A-b":       {Cmd: CmdWordLeft},
	"A-f":       {Cmd: CmdWordRight},
	"C-Left":    {Cmd: CmdWordLeft},
	"C-Right":   {Cmd: CmdWordRight},
	"C-S-Left":  {Cmd: CmdWordLeft, Extend: true},
	"C-S-Right": {Cmd: CmdWordRight, Extend: true},

	"Home":   {Cmd: CmdLineStart},
	"End":    {Cmd: CmdLineEnd},
	"C-a":    {Cmd: CmdLineStart},
	"C-e":    {Cmd: CmdLineEnd},
	"S-Home": {Cmd: CmdLineStart, Extend: true},
	"S-End":  {Cmd: CmdLineEnd, Extend: true},

	"PgUp":   {Cmd: CmdPageUp},
	"PgDn":   {Cmd: CmdPageDown},
	"S-PgUp": {Cmd: CmdPageUp, Extend: true},
	"S-PgDn": {Cmd: CmdPageDown, Extend: true},

	"Enter":     {Cmd: CmdNewline},
	"Backspace": {Cmd: CmdBackspace},
	"Delete":    {Cmd: CmdDelete},
	"C-k":       {Cmd: CmdKillLine},
	"A-c":       {Cmd: CmdCenterLine},

	"C-c": {Cmd: CmdCopy},
	"C-x": {Cmd: CmdCut},
	"C-v": {Cmd: CmdPaste},

	"C-s": {Cmd: CmdSave},
	"C-q": {Cmd: CmdQuit},
	"Esc": {Cmd: CmdCancel},
}

// DefaultKeymap builds the built-in keymap.
func DefaultKeymap() Keymap {
	km := make(Keymap, len(defaultBindings))
	for spec, binding := range defaultBindings {
		km[key.MustParse(spec)] = binding
	}
	return km
}
