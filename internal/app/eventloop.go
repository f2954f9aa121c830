package app

import (
	"errors"
	"fmt"

	"github.com/ljosa/pagemark/internal/input/key"
	"github.com/ljosa/pagemark/internal/storage"
	"github.com/ljosa/pagemark/internal/term"
)

// Run enters the event loop and blocks until the user quits or the
// screen fails. The screen is initialized on entry and restored on
// exit, including on error. One event is handled per iteration,
// followed by a redraw; nothing else mutates editor state.
func (ed *Editor) Run() error {
	if err := ed.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer ed.screen.Fini()

	ed.logger.Info("editor started", "path", ed.path)
	ed.resize()
	ed.draw()

	for {
		ev := ed.screen.PollEvent()
		err := ed.handleEvent(ev)
		if errors.Is(err, ErrQuit) {
			ed.saveSession()
			ed.logger.Info("editor stopped")
			return nil
		}
		if err != nil {
			return err
		}
		ed.draw()
	}
}

// handleEvent routes one terminal event. Returns ErrQuit when the
// editor should exit.
func (ed *Editor) handleEvent(ev term.Event) error {
	switch ev.Type {
	case term.EventKey:
		return ed.handleKey(ev.Key)
	case term.EventResize:
		ed.resize()
		return nil
	case term.EventNone:
		// The screen is gone.
		return ErrQuit
	default:
		return nil
	}
}

// resize fits the viewport to the screen, reserving the bottom row for
// the status line.
func (ed *Editor) resize() {
	cols, rows := ed.screen.Size()
	ed.view.SetSize(rows-1, cols, ed.settings.TextWidth)
	ed.view.Render()
}

// handleKey dispatches one key event. A chord found in the keymap runs
// its command; any other printable character inserts itself. The quit
// confirmation and the status message last exactly one keystroke.
func (ed *Editor) handleKey(k key.Event) error {
	armed := ed.quitArmed
	ed.quitArmed = false
	ed.status = ""

	if binding, ok := ed.keymap[k]; ok {
		ed.logger.Debug("command", "key", k.String(), "cmd", binding.Cmd)
		return ed.execute(binding, armed)
	}
	if k.IsChar() {
		ed.doc.InsertText(string(k.Rune))
	}
	return nil
}

func (ed *Editor) execute(b Binding, quitArmed bool) error {
	if b.Cmd.IsMotion() {
		ed.motion(b)
		return nil
	}

	switch b.Cmd {
	case CmdNewline:
		ed.doc.InsertText("\n")
	case CmdBackspace:
		ed.doc.Backspace()
	case CmdDelete:
		ed.doc.DeleteForward()
	case CmdKillLine:
		if killed := ed.doc.KillLine(); killed != "" {
			ed.setClipboard(killed)
		}
	case CmdCenterLine:
		ed.doc.CenterLine()
	case CmdCopy:
		ed.copySelection(false)
	case CmdCut:
		ed.copySelection(true)
	case CmdPaste:
		ed.paste()
	case CmdSave:
		ed.saveCommand()
	case CmdQuit:
		if ed.doc.Dirty() && !quitArmed {
			ed.quitArmed = true
			ed.status = "unsaved changes: C-q again discards, C-s saves"
			ed.screen.Beep()
			return nil
		}
		return ErrQuit
	case CmdCancel:
		ed.doc.ClearSelection()
		ed.view.Render()
	}
	return nil
}

// motion runs one cursor motion, extending the selection when the
// binding asks for it and clearing it otherwise.
func (ed *Editor) motion(b Binding) {
	if b.Extend {
		if !ed.doc.HasSelection() {
			ed.doc.StartSelection()
		}
	} else {
		ed.doc.ClearSelection()
	}

	switch b.Cmd {
	case CmdLeft:
		ed.doc.LeftChar()
	case CmdRight:
		ed.doc.RightChar()
	case CmdUp:
		ed.view.MoveCursorUp()
	case CmdDown:
		ed.view.MoveCursorDown()
	case CmdWordLeft:
		ed.doc.LeftWord()
	case CmdWordRight:
		ed.doc.RightWord()
	case CmdLineStart:
		ed.doc.MoveBeginningOfLine()
	case CmdLineEnd:
		ed.doc.MoveEndOfLine()
	case CmdPageUp:
		ed.view.PageUp()
	case CmdPageDown:
		ed.view.PageDown()
	}

	if b.Extend {
		ed.doc.UpdateSelectionEnd()
	}
	// Selection changes never notify the view themselves.
	ed.view.Render()
}

func (ed *Editor) copySelection(cut bool) {
	text := ed.doc.SelectedText()
	if text == "" {
		ed.status = "no selection"
		return
	}
	ed.setClipboard(text)
	if cut {
		ed.doc.DeleteSelection()
		return
	}
	ed.status = "copied"
}

// setClipboard stores text for pasting. A system clipboard failure is
// not fatal; the text stays available in the internal buffer.
func (ed *Editor) setClipboard(text string) {
	if err := ed.clip.Write(text); err != nil {
		ed.logger.Debug("system clipboard write failed", "err", err)
	}
}

func (ed *Editor) paste() {
	text := storage.Normalize(ed.clip.Read())
	if text == "" {
		ed.status = "clipboard empty"
		return
	}
	ed.doc.InsertText(text)
}

func (ed *Editor) saveCommand() {
	err := ed.save()
	if err == nil {
		ed.status = fmt.Sprintf("saved %s", ed.fileName())
		return
	}
	ed.logger.Error("save failed", "err", err)
	ed.status = err.Error()
	ed.screen.Beep()
}
