package console

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// SpinnerWrapper wraps the spinner functionality with TTY detection
type SpinnerWrapper struct {
	spinner *spinner.Spinner
	enabled bool
}

// NewSpinner creates a new spinner with the given message. The spinner is
// automatically disabled when not running in a TTY.
func NewSpinner(message string) *SpinnerWrapper {
	enabled := isatty.IsTerminal(1)

	s := &SpinnerWrapper{enabled: enabled}
	if enabled {
		s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.spinner.Suffix = " " + message
		_ = s.spinner.Color("cyan")
	}
	return s
}

// Start begins the spinner animation
func (s *SpinnerWrapper) Start() {
	if s.enabled && s.spinner != nil {
		s.spinner.Start()
	}
}

// Stop stops the spinner animation
func (s *SpinnerWrapper) Stop() {
	if s.enabled && s.spinner != nil {
		s.spinner.Stop()
	}
}

// UpdateMessage updates the spinner message
func (s *SpinnerWrapper) UpdateMessage(message string) {
	if s.enabled && s.spinner != nil {
		s.spinner.Suffix = " " + message
	}
}
