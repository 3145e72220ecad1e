// Package input reads validated answers from a human, one line at a
// time.
//
// # Overview
//
// Interactive command-line tools ask, read a line, validate, and ask
// again until the answer is usable. This package owns that loop: free
// text, values parsed into a target type, or a pick from a numbered
// menu. Validation failures print a diagnostic and re-ask without
// limit; only stream errors end a read early, and those are returned
// to the caller unretried.
//
// # Usage
//
// The package-level functions prompt on stdin/stdout:
//
//	name, err := input.ReadStringNonEmpty("What is your name")
//	lang, err := input.ReadChoice("Language", []string{"go", "rust"}, 0)
//	if ok, _ := input.Confirm("Continue?", true); !ok {
//	    return
//	}
//
// Typed reads go through a parse function (see the parse package for
// stock parsers):
//
//	age, err := input.ReadCustomNonEmpty(nil, "How old are you", parse.Uint16)
//	timeout, ok, err := input.ReadCustom(nil, "Timeout (optional)", parse.Duration)
//
// For tests, or when the streams are not the process terminal, build a
// Prompter with explicit Options:
//
//	p := input.New(&input.Options{In: strings.NewReader("42\n"), Out: &buf})
//
// # Styling
//
// Questions are rendered cyan and bold, hints and menus gray, and
// diagnostics red via lipgloss. Styling is on only for New(nil) with a
// terminal on stdout; a Prompter built from explicit Options writes
// plain text unless Options.Styles is set.
//
// # Concurrency
//
// Reads block until a full line arrives or the stream ends. There are
// no timeouts and no internal locking; a Prompter is for one goroutine
// at a time, and interleaving calls from several goroutines is the
// caller's bug to avoid.
//
// # Non-Interactive Mode
//
// In CI or scripted runs, prefer flags and fall back to prompts:
//
//	if nameFlag != "" {
//	    name = nameFlag
//	} else {
//	    name, err = input.ReadStringNonEmpty("Name")
//	}
//
// A redirected empty stream makes every read return io.EOF, so retry
// loops terminate instead of spinning.
package input
