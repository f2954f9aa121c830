package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ljosa/pagemark/internal/input/key"
)

// Terminal implements Screen using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks until a key, resize, or posted event arrives. Mouse
// and focus events are ignored.
func (t *Terminal) PollEvent() Event {
	for {
		switch e := t.screen.PollEvent().(type) {
		case nil:
			return Event{Type: EventNone}
		case *tcell.EventKey:
			return Event{Type: EventKey, Key: decodeKey(e)}
		case *tcell.EventResize:
			w, h := e.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *postedEvent:
			return e.event
		}
	}
}

func (t *Terminal) PostEvent(event Event) {
	ev := &postedEvent{event: event}
	ev.SetEventNow()
	_ = t.screen.PostEvent(ev) // best-effort; the queue may be full
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; the terminal may not support it
}

var _ Screen = (*Terminal)(nil)

// postedEvent carries a synthetic Event through tcell's queue.
type postedEvent struct {
	tcell.EventTime
	event Event
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	if s == StyleReverse {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault
}

// decodeKey converts a tcell key event into the editor's key model:
// plain characters become rune events with Shift folded into the rune,
// Ctrl-letter chords become rune events carrying ModCtrl, and special
// keys keep their Shift so shifted arrows stay distinguishable.
func decodeKey(ev *tcell.EventKey) key.Event {
	mods := decodeMods(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods.Without(key.ModShift))
	}

	// Enter, Tab, Backspace and Escape share code points with the
	// Ctrl-letter range and take precedence over it.
	switch k {
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	switch k {
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	}

	return key.Event{}
}

// decodeMods converts a tcell modifier mask. Meta is folded into Alt
// since terminals disagree about which one an Option/Alt chord reports.
func decodeMods(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}
