// Package app assembles the editor: one document, one viewport, one
// screen, driven by a single-threaded event loop. No goroutine other
// than the loop ever touches editor state, so the package has no locks.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ljosa/pagemark/internal/clipboard"
	"github.com/ljosa/pagemark/internal/config"
	"github.com/ljosa/pagemark/internal/document"
	"github.com/ljosa/pagemark/internal/storage"
	"github.com/ljosa/pagemark/internal/term"
	"github.com/ljosa/pagemark/internal/view"
)

// Options configures a new Editor. The zero value of every field has a
// usable default, so tests can set only what they care about.
type Options struct {
	// Path is the document file to edit. It does not have to exist
	// yet; a missing file starts an empty buffer saved to that path.
	Path string

	// Screen overrides the terminal display. Defaults to the real
	// terminal; tests install an in-memory screen.
	Screen term.Screen

	// Store persists settings and per-file sessions. Nil disables
	// persistence.
	Store *config.Store

	// Settings are the effective editor settings. A zero value means
	// the defaults.
	Settings config.Settings

	// Clipboard overrides the copy/paste transport. Defaults to the
	// system clipboard with an in-process fallback.
	Clipboard *clipboard.Clipboard

	// Logger receives diagnostic output. Nil discards it; the
	// terminal is never written to.
	Logger *log.Logger
}

// Editor owns the editing session for one document.
type Editor struct {
	// Core infrastructure
	screen term.Screen
	clip   *clipboard.Clipboard
	store  *config.Store
	logger *log.Logger

	// Editing components
	doc    *document.Document
	view   *view.Viewport
	keymap Keymap

	// State
	path      string
	settings  config.Settings
	session   config.Session
	status    string
	quitArmed bool
}

// New creates an editor for the document at opts.Path, restoring the
// cursor from the previous session when a store is configured. The
// screen is not touched until Run.
func New(opts Options) (*Editor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", uuid.New().String())

	settings := opts.Settings
	if settings.TextWidth <= 0 {
		settings = config.DefaultSettings()
	}

	screen := opts.Screen
	if screen == nil {
		t, err := term.NewTerminal()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		screen = t
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.New()
	}

	ed := &Editor{
		screen:   screen,
		clip:     clip,
		store:    opts.Store,
		logger:   logger,
		doc:      document.New(),
		keymap:   DefaultKeymap(),
		path:     opts.Path,
		settings: settings,
	}

	if opts.Path != "" {
		text, err := storage.Load(opts.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// New file: empty buffer, first save creates it.
		case err != nil:
			return nil, err
		default:
			ed.doc.SetText(text)
		}
	}

	// Rows stay zero until Run learns the screen size; columns start at
	// the text width so layout arithmetic works before the first resize.
	ed.view = view.New(ed.doc, 0, settings.TextWidth, settings.TextWidth)
	ed.doc.SetView(ed.view)
	ed.restoreSession()

	return ed, nil
}

// Document exposes the editor's document, mainly for tests.
func (ed *Editor) Document() *document.Document {
	return ed.doc
}

// save writes the document to its file and clears the dirty flag.
func (ed *Editor) save() error {
	if ed.path == "" {
		return ErrNoFilePath
	}
	if err := storage.Save(ed.path, ed.doc.Text()); err != nil {
		return err
	}
	ed.doc.MarkClean()
	ed.logger.Info("document saved", "path", ed.path)
	return nil
}

// fileName returns the display name of the document.
func (ed *Editor) fileName() string {
	if ed.path == "" {
		return "[no file]"
	}
	return filepath.Base(ed.path)
}

// restoreSession places the cursor where the previous session on this
// file left it. Positions beyond the current document clamp.
func (ed *Editor) restoreSession() {
	if ed.store == nil || ed.path == "" {
		return
	}
	session, ok := ed.store.LookupSession(ed.path)
	if !ok {
		return
	}
	ed.session = session
	ed.doc.SetCursor(document.Position{Para: session.Para, Offset: session.Offset})
	ed.view.UpdateDesiredColumn()
	ed.logger.Debug("session restored", "para", session.Para, "offset", session.Offset)
}

// saveSession records the cursor position for the next visit.
func (ed *Editor) saveSession() {
	if ed.store == nil || ed.path == "" {
		return
	}
	cur := ed.doc.Cursor()
	ed.session.Path = ed.path
	ed.session.Para = cur.Para
	ed.session.Offset = cur.Offset
	if err := ed.store.SaveSession(ed.session); err != nil {
		ed.logger.Error("failed to save session", "err", err)
	}
}
