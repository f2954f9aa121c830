package app

import (
	"testing"

	"github.com/ljosa/pagemark/internal/input/key"
)

func TestDefaultKeymapBindings(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		spec   string
		cmd    Command
		extend bool
	}{
		{"Left", CmdLeft, false},
		{"S-Left", CmdLeft, true},
		{"S-Down", CmdDown, true},
		{"C-Left", CmdWordLeft, false},
		{"C-S-Right", CmdWordRight, true},
		{"Home", CmdLineStart, false},
		{"C-a", CmdLineStart, false},
		{"C-e", CmdLineEnd, false},
		{"S-End", CmdLineEnd, true},
		{"PgDn", CmdPageDown, false},
		{"Enter", CmdNewline, false},
		{"Backspace", CmdBackspace, false},
		{"C-k", CmdKillLine, false},
		{"A-c", CmdCenterLine, false},
		{"C-c", CmdCopy, false},
		{"C-x", CmdCut, false},
		{"C-v", CmdPaste, false},
		{"C-s", CmdSave, false},
		{"C-q", CmdQuit, false},
		{"Esc", CmdCancel, false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			binding, ok := km[key.MustParse(tt.spec)]
			if !ok {
				t.Fatalf("keymap has no binding for %q", tt.spec)
			}
			if binding.Cmd != tt.cmd {
				t.Errorf("binding.Cmd = %v, want %v", binding.Cmd, tt.cmd)
			}
			if binding.Extend != tt.extend {
				t.Errorf("binding.Extend = %v, want %v", binding.Extend, tt.extend)
			}
		})
	}
}

func TestDefaultKeymapUnboundKeys(t *testing.T) {
	km := DefaultKeymap()
	for _, spec := range []string{"C-z", "a", "Tab", "A-x"} {
		if _, ok := km[key.MustParse(spec)]; ok {
			t.Errorf("keymap unexpectedly binds %q", spec)
		}
	}
}

func TestCommandIsMotion(t *testing.T) {
	motions := []Command{CmdLeft, CmdRight, CmdUp, CmdDown, CmdWordLeft,
		CmdWordRight, CmdLineStart, CmdLineEnd, CmdPageUp, CmdPageDown}
	for _, c := range motions {
		if !c.IsMotion() {
			t.Errorf("%v.IsMotion() = false, want true", c)
		}
	}
	others := []Command{CmdNone, CmdNewline, CmdBackspace, CmdKillLine,
		CmdCopy, CmdPaste, CmdSave, CmdQuit, CmdCancel}
	for _, c := range others {
		if c.IsMotion() {
			t.Errorf("%v.IsMotion() = true, want false", c)
		}
	}
}

func TestCommandString(t *testing.T) {
	if got := CmdSave.String(); got != "save" {
		t.Errorf("CmdSave.String() = %q, want %q", got, "save")
	}
	if got := Command(999).String(); got != "unknown" {
		t.Errorf("Command(999).String() = %q, want %q", got, "unknown")
	}
}
