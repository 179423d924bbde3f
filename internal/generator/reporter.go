package generator

import (
	"fmt"
	"io"
)

// Reporter receives user-facing notifications about file effects as they
// happen. It is distinct from logging: reporter output is the tool's
// primary console feedback.
type Reporter interface {
	AddedFile(path string)
	OverwroteFile(path string)
	SkippedExists(path string)
	Injected(path string)
}

// ConsoleReporter prints one line per effect.
type ConsoleReporter struct {
	Out io.Writer
}

func (c ConsoleReporter) AddedFile(path string) {
	fmt.Fprintf(c.Out, "added: %s\n", path)
}

func (c ConsoleReporter) OverwroteFile(path string) {
	fmt.Fprintf(c.Out, "overwritten: %s\n", path)
}

func (c ConsoleReporter) SkippedExists(path string) {
	fmt.Fprintf(c.Out, "skipped (exists): %s\n", path)
}

func (c ConsoleReporter) Injected(path string) {
	fmt.Fprintf(c.Out, "injected: %s\n", path)
}

// silentReporter drops all notifications.
type silentReporter struct{}

func (silentReporter) AddedFile(string)     {}
func (silentReporter) OverwroteFile(string) {}
func (silentReporter) SkippedExists(string) {}
func (silentReporter) Injected(string)      {}

// SilentReporter returns a Reporter that produces no output.
func SilentReporter() Reporter {
	return silentReporter{}
}
