package parse

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Func converts one trimmed line of input into a T. Any error means the
// text was not a valid T; callers treat every failure the same way and
// re-ask, so errors carry no structure.
type Func[T any] func(string) (T, error)

// String accepts any text unchanged.
func String(s string) (string, error) {
	return s, nil
}

// Int parses a decimal int.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// Int64 parses a decimal int64.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Uint16 parses a decimal uint16. Ages, ports, small counts.
func Uint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	return uint16(v), err
}

// Uint64 parses a decimal uint64.
func Uint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Float64 parses a decimal floating-point number.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// Bool parses strconv's boolean spellings: 1, t, true, 0, f, false.
func Bool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

// Duration parses Go duration syntax, e.g. "90s" or "1h30m".
func Duration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// Date returns a parser for timestamps in the given layout:
//
//	birthday, err := input.ReadCustomNonEmpty(p, "Date of birth", parse.Date("2006-01-02"))
func Date(layout string) Func[time.Time] {
	return func(s string) (time.Time, error) {
		return time.Parse(layout, s)
	}
}

// UUID parses an RFC 4122 UUID in its canonical textual forms.
func UUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
