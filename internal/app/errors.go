package app

import "errors"

// Editor errors.
var (
	// ErrQuit signals that the editor should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoFilePath indicates a save was requested for a buffer that
	// has no file name yet.
	ErrNoFilePath = errors.New("no file name")
)
