package tui

import "errors"

var (
	// ErrAborted is returned by drivers when the user presses Ctrl+C. Run
	// treats it as a normal end of the session.
	ErrAborted = errors.New("tui: aborted")
	// ErrNoDriver is returned by Run on a session built without a driver.
	ErrNoDriver = errors.New("tui: prompt driver is nil")
)
