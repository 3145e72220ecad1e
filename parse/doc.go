// Package parse provides canonical parsers for interactive input.
//
// # Overview
//
// The input package converts answers into typed values through a
// parse.Func: a plain function from trimmed text to a value or an
// error. This package supplies the stock parsers interactive tools
// reach for (integers, floats, booleans, durations, dates, UUIDs), so
// call sites stay one-liners:
//
//	age, err := input.ReadCustomNonEmpty(p, "How old are you", parse.Uint16)
//
// # Custom parsers
//
// Any func(string) (T, error) works; nothing here is special. A parser
// should accept already-trimmed text and return an error for anything
// it cannot convert — the error itself is never shown to the user, who
// just sees the re-ask diagnostic.
package parse
