// Package output provides styled terminal output for the pinia CLI.
//
// Package-level functions write to stdout. Code that must stay testable
// without a terminal takes a Sink instead, which is satisfied by *Console
// for real runs and *Recorder in tests.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// Sink receives user-facing messages emitted while generating stores.
type Sink interface {
	Success(msg string)
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	Verbose(msg string)
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	return verboseMode
}

// Console writes styled messages to an io.Writer.
type Console struct {
	w io.Writer
}

// NewConsole creates a console sink. A nil writer means os.Stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// Success prints a success message with 🔥 emoji and green color.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.w, successStyle.Render("🔥 "+msg))
}

// Error prints an error message with ❌ emoji and red color.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.w, errorStyle.Render("❌ "+msg))
}

// Warn prints a warning with ⚠️ emoji and yellow color.
// Warnings never abort a generation.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.w, warnStyle.Render("⚠️  "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.w, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
func (c *Console) Step(msg string) {
	fmt.Fprintln(c.w, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func (c *Console) Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(c.w, stepStyle.Render("🔍 "+msg))
	}
}

// Stdout returns a console sink bound to the current os.Stdout.
func Stdout() *Console {
	return NewConsole(os.Stdout)
}

// Success prints a success message to stdout.
//
// Example:
//
//	output.Success("Store with name cart has been created successfully in the directory src/stores")
func Success(msg string) {
	Stdout().Success(msg)
}

// Error prints an error message to stdout.
func Error(msg string) {
	Stdout().Error(msg)
}

// Warn prints a warning to stdout.
func Warn(msg string) {
	Stdout().Warn(msg)
}

// Info prints an informational message to stdout.
func Info(msg string) {
	Stdout().Info(msg)
}

// Step prints an indented step message to stdout.
//
// Example:
//
//	output.Step(`import { useCartStore } from "@/stores";`)
func Step(msg string) {
	Stdout().Step(msg)
}

// Verbose prints a debug message to stdout when verbose mode is enabled.
func Verbose(msg string) {
	Stdout().Verbose(msg)
}
