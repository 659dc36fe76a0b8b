package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called without a backend.
	ErrNoBackend = errors.New("no backend set")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// ReloadError reports a failed keymap reload. The previous bindings stay
// in effect.
type ReloadError struct {
	Path string
	Err  error
}

func (e *ReloadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reload: %v", e.Err)
	}
	return fmt.Sprintf("reload %s: %v", e.Path, e.Err)
}

func (e *ReloadError) Unwrap() error {
	return e.Err
}
