// Package term provides the terminal display abstraction. The Screen
// interface hides the concrete backend so the editor can run against a
// real terminal or an in-memory double in tests.
package term

import (
	"github.com/mattn/go-runewidth"

	"github.com/ljosa/pagemark/internal/input/key"
)

// Style selects the visual treatment of a cell.
type Style int

const (
	// StyleDefault is the terminal's normal text style.
	StyleDefault Style = iota

	// StyleReverse swaps foreground and background, used for the
	// selection highlight and the status line.
	StyleReverse
)

// EventType identifies the type of terminal event.
type EventType int

const (
	// EventNone is returned when the screen has been finalized.
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key key.Event

	// Resize event fields
	Width, Height int
}

// Screen is the display surface the editor draws on.
type Screen interface {
	// Init prepares the screen for use. Must be called before any
	// other method.
	Init() error

	// Fini releases the screen and restores the terminal state.
	Fini()

	// Size returns the current dimensions in character cells.
	Size() (cols, rows int)

	// SetCell sets a single cell. Positions outside the screen are
	// silently ignored.
	SetCell(x, y int, r rune, style Style)

	// Clear blanks the entire screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent waits for and returns the next event. Returns an
	// EventNone event once the screen is finalized.
	PollEvent() Event

	// PostEvent queues a synthetic event for PollEvent to return.
	PostEvent(Event)

	// Beep produces an audible or visual bell.
	Beep()
}

// DrawText writes text starting at (x, y) and returns the column after
// the last cell. Wide runes advance by their display width.
func DrawText(s Screen, x, y int, text string, style Style) int {
	for _, r := range text {
		s.SetCell(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// Memory is an in-memory Screen for tests.
type Memory struct {
	cols, rows    int
	cells         [][]rune
	styles        [][]Style
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
	shows         int
	beeps         int
	finished      bool
}

// NewMemory creates a memory screen with the given dimensions.
func NewMemory(cols, rows int) *Memory {
	m := &Memory{events: make(chan Event, 100)}
	m.alloc(cols, rows)
	return m
}

func (m *Memory) alloc(cols, rows int) {
	m.cols, m.rows = cols, rows
	m.cells = make([][]rune, rows)
	m.styles = make([][]Style, rows)
	for y := range m.cells {
		m.cells[y] = make([]rune, cols)
		m.styles[y] = make([]Style, cols)
		for x := range m.cells[y] {
			m.cells[y][x] = ' '
		}
	}
}

func (m *Memory) Init() error { return nil }

func (m *Memory) Fini() {
	if !m.finished {
		m.finished = true
		close(m.events)
	}
}

func (m *Memory) Size() (int, int) {
	return m.cols, m.rows
}

func (m *Memory) SetCell(x, y int, r rune, style Style) {
	if x >= 0 && x < m.cols && y >= 0 && y < m.rows {
		m.cells[y][x] = r
		m.styles[y][x] = style
	}
}

func (m *Memory) Clear() {
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = ' '
			m.styles[y][x] = StyleDefault
		}
	}
}

func (m *Memory) Show() { m.shows++ }

func (m *Memory) ShowCursor(x, y int) {
	m.cursorX, m.cursorY = x, y
	m.cursorVisible = true
}

func (m *Memory) HideCursor() { m.cursorVisible = false }

func (m *Memory) PollEvent() Event {
	ev, ok := <-m.events
	if !ok {
		return Event{Type: EventNone}
	}
	return ev
}

func (m *Memory) PostEvent(event Event) {
	select {
	case m.events <- event:
	default:
		// Dropped if the queue is full; tests never queue this deep.
	}
}

func (m *Memory) Beep() { m.beeps++ }

// Row returns the contents of row y as a string, for assertions.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.rows {
		return ""
	}
	return string(m.cells[y])
}

// StyleAt returns the style of the cell at (x, y).
func (m *Memory) StyleAt(x, y int) Style {
	if x >= 0 && x < m.cols && y >= 0 && y < m.rows {
		return m.styles[y][x]
	}
	return StyleDefault
}

// Cursor returns the cursor position and visibility.
func (m *Memory) Cursor() (x, y int, visible bool) {
	return m.cursorX, m.cursorY, m.cursorVisible
}

// Shows returns how many times Show has been called.
func (m *Memory) Shows() int { return m.shows }

// Beeps returns how many times Beep has been called.
func (m *Memory) Beeps() int { return m.beeps }

// Resize changes the dimensions and posts the matching resize event.
func (m *Memory) Resize(cols, rows int) {
	m.alloc(cols, rows)
	m.PostEvent(Event{Type: EventResize, Width: cols, Height: rows})
}

// TypeString posts one key event per rune, as if the user typed text.
func (m *Memory) TypeString(text string) {
	for _, r := range text {
		m.PostEvent(Event{Type: EventKey, Key: key.NewRuneEvent(r, key.ModNone)})
	}
}

// TypeKeys posts the events for each parsed key specification.
func (m *Memory) TypeKeys(specs ...string) {
	for _, spec := range specs {
		m.PostEvent(Event{Type: EventKey, Key: key.MustParse(spec)})
	}
}

var _ Screen = (*Memory)(nil)
