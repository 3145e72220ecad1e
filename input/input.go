package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks questions on an output stream and reads line-based
// answers from an input stream. The defaults talk to the process
// terminal; tests inject buffers instead.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles *Styles
}

// Options configures a Prompter.
type Options struct {
	In     io.Reader // defaults to os.Stdin
	Out    io.Writer // defaults to os.Stdout
	Styles *Styles   // nil means plain, unstyled text
}

// New creates a Prompter with sensible defaults.
//
// New(nil) prompts on stdin/stdout and styles its output when stdout is
// a terminal. A Prompter built from explicit Options writes plain text
// unless Options.Styles is set, so captured output stays byte-stable.
func New(opts *Options) *Prompter {
	if opts == nil {
		opts = &Options{Styles: autoStyles()}
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Prompter{
		in:     bufio.NewReader(opts.In),
		out:    opts.Out,
		styles: opts.Styles,
	}
}

var std = New(nil)

// Std returns the shared Prompter on os.Stdin and os.Stdout. The
// package-level functions delegate to it.
func Std() *Prompter { return std }

// ReadString asks question and returns one line of input, trimmed of
// surrounding whitespace including the line terminator. An empty line
// (after trimming) returns "", meaning the user gave no answer.
func (p *Prompter) ReadString(question string) (string, error) {
	return p.readLine(p.questionPrompt(question))
}

// ReadStringNonEmpty asks question until the user supplies a non-empty
// line. The loop has no iteration cap; it ends only with a value or a
// propagated read/write error.
func (p *Prompter) ReadStringNonEmpty(question string) (string, error) {
	for {
		s, err := p.ReadString(question)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		if err := p.diag("Input must not be empty."); err != nil {
			return "", err
		}
	}
}

// ReadStringNoQuestion reads a trimmed line without printing any prompt
// text, for follow-up lines after the caller has printed its own.
func (p *Prompter) ReadStringNoQuestion() (string, error) {
	return p.readLine("")
}

// ReadStringDefault asks question with defaultValue shown as a hint and
// returns defaultValue when the user just presses enter.
func (p *Prompter) ReadStringDefault(question, defaultValue string) (string, error) {
	s, err := p.readLine(p.hintPrompt(question, "("+defaultValue+")"))
	if err != nil {
		return "", err
	}
	if s == "" {
		return defaultValue, nil
	}
	return s, nil
}

// readLine writes prompt (when non-empty), flushes, and reads one
// trimmed line. A final line without a trailing terminator is a valid
// line; end-of-stream with no data surfaces the read error.
func (p *Prompter) readLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return "", err
		}
	}
	if err := p.flush(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// flush pushes a pending prompt through a buffered writer so it is
// visible before the read blocks.
func (p *Prompter) flush() error {
	if f, ok := p.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// diag prints a validation diagnostic on its own line.
func (p *Prompter) diag(msg string) error {
	if p.styles != nil {
		msg = p.styles.Error.Render(msg)
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

// questionPrompt renders "{question}: ".
func (p *Prompter) questionPrompt(question string) string {
	if p.styles != nil {
		return p.styles.Prompt.Render(question) + ": "
	}
	return question + ": "
}

// hintPrompt renders "{question} {hint}: " with the hint in the gray
// style, e.g. a default value or a [Y/n] marker.
func (p *Prompter) hintPrompt(question, hint string) string {
	if p.styles != nil {
		return p.styles.Prompt.Render(question) + " " + p.styles.Hint.Render(hint) + ": "
	}
	return question + " " + hint + ": "
}

// Package-level convenience functions on the shared stdin Prompter.

// ReadString asks question on the shared Prompter.
func ReadString(question string) (string, error) { return std.ReadString(question) }

// ReadStringNonEmpty asks question on the shared Prompter until it gets
// a non-empty answer.
func ReadStringNonEmpty(question string) (string, error) { return std.ReadStringNonEmpty(question) }

// ReadStringNoQuestion reads a line from the shared Prompter without a
// prompt.
func ReadStringNoQuestion() (string, error) { return std.ReadStringNoQuestion() }

// ReadStringDefault asks question on the shared Prompter with a default.
func ReadStringDefault(question, defaultValue string) (string, error) {
	return std.ReadStringDefault(question, defaultValue)
}

// ReadChoice presents options on the shared Prompter.
func ReadChoice(question string, options []string, defaultIdx int) (int, error) {
	return std.ReadChoice(question, options, defaultIdx)
}

// Confirm asks a yes/no question on the shared Prompter.
func Confirm(question string, defaultYes bool) (bool, error) {
	return std.Confirm(question, defaultYes)
}
