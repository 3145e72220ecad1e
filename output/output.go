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
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled status messages to a single writer.
type Printer struct {
	out     io.Writer
	verbose bool
}

// Options configures a Printer.
type Options struct {
	Out     io.Writer // defaults to os.Stdout
	Verbose bool      // enables Verbose messages
}

// NewPrinter creates a Printer with sensible defaults.
func NewPrinter(opts *Options) *Printer {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Printer{out: opts.Out, verbose: opts.Verbose}
}

// SetVerbose enables or disables Verbose messages. Call it from the CLI
// when the --verbose flag is set.
func (p *Printer) SetVerbose(v bool) { p.verbose = v }

// Success prints a completed-operation message in green.
//
// Example:
//
//	out.Success("Profile saved")
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, successStyle.Render("✅ "+msg))
}

// Error prints a failure that needs user attention in red.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, errorStyle.Render("❌ "+msg))
}

// Info prints a status update or explanation in cyan.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented sub-item in gray. Use it for actionable next
// steps under an Info line.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.out, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only when verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.out, stepStyle.Render("🔍 "+msg))
	}
}

var std = NewPrinter(nil)

// SetVerbose enables or disables verbose output on the default stdout
// Printer.
func SetVerbose(v bool) { std.SetVerbose(v) }

// Success prints on the default stdout Printer.
func Success(msg string) { std.Success(msg) }

// Error prints on the default stdout Printer.
func Error(msg string) { std.Error(msg) }

// Info prints on the default stdout Printer.
func Info(msg string) { std.Info(msg) }

// Step prints on the default stdout Printer.
func Step(msg string) { std.Step(msg) }

// Verbose prints on the default stdout Printer when verbose is enabled.
func Verbose(msg string) { std.Verbose(msg) }
