package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress while a blocking call runs
type Spinner struct {
	s   *spinner.Spinner
	out io.Writer
}

// StartSpinner starts a spinner with the given message on out
func StartSpinner(out io.Writer, msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + msg
	s.Start()
	return &Spinner{s: s, out: out}
}

// Update replaces the spinner message
func (sp *Spinner) Update(msg string) {
	sp.s.Lock()
	sp.s.Suffix = " " + msg
	sp.s.Unlock()
}

// Succeed stops the spinner and prints a success line
func (sp *Spinner) Succeed(msg string) {
	sp.s.Stop()
	fmt.Fprintln(sp.out, Ok(msg))
}

// Fail stops the spinner and prints an error line
func (sp *Spinner) Fail(msg string) {
	sp.s.Stop()
	fmt.Fprintln(sp.out, Err(msg))
}

// Stop stops the spinner without printing
func (sp *Spinner) Stop() {
	sp.s.Stop()
}
