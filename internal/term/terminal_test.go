package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ljosa/pagemark/internal/input/key"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{"shifted rune drops shift", tcell.NewEventKey(tcell.KeyRune, 'B', tcell.ModShift), key.NewRuneEvent('B', key.ModNone)},
		{"ctrl-s", tcell.NewEventKey(tcell.KeyCtrlS, rune(19), tcell.ModCtrl), key.NewRuneEvent('s', key.ModCtrl)},
		{"ctrl-k", tcell.NewEventKey(tcell.KeyCtrlK, rune(11), tcell.ModCtrl), key.NewRuneEvent('k', key.ModCtrl)},
		{"ctrl-a", tcell.NewEventKey(tcell.KeyCtrlA, rune(1), tcell.ModCtrl), key.NewRuneEvent('a', key.ModCtrl)},
		{"alt-b", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModAlt), key.NewRuneEvent('b', key.ModAlt)},
		{"meta folds into alt", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModMeta), key.NewRuneEvent('f', key.ModAlt)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, '\t', tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, rune(127), tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"backspace legacy", tcell.NewEventKey(tcell.KeyBackspace, rune(8), tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, rune(27), tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyDown, key.ModNone)},
		{"shift-down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyDown, key.ModShift)},
		{"shift-right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyRight, key.ModShift)},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyHome, key.ModNone)},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyPageUp, key.ModNone)},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyDelete, key.ModNone)},
		{"unknown key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.Event{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeKey(tt.ev); !got.Equals(tt.want) {
				t.Errorf("decodeKey() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecodeMods(t *testing.T) {
	tests := []struct {
		in   tcell.ModMask
		want key.Modifier
	}{
		{tcell.ModNone, key.ModNone},
		{tcell.ModShift, key.ModShift},
		{tcell.ModCtrl, key.ModCtrl},
		{tcell.ModAlt, key.ModAlt},
		{tcell.ModMeta, key.ModAlt},
		{tcell.ModCtrl | tcell.ModShift, key.ModCtrl | key.ModShift},
	}
	for _, tt := range tests {
		if got := decodeMods(tt.in); got != tt.want {
			t.Errorf("decodeMods(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertStyle(t *testing.T) {
	if got := convertStyle(StyleDefault); got != tcell.StyleDefault {
		t.Errorf("convertStyle(StyleDefault) = %v", got)
	}
	if got := convertStyle(StyleReverse); got != tcell.StyleDefault.Reverse(true) {
		t.Errorf("convertStyle(StyleReverse) = %v", got)
	}
}
