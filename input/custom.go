package input

import "fmt"

// ReadCustom asks question and converts the answer with parse. An empty
// line is accepted as "skip" and returns ok=false without retrying; a
// line that fails to parse gets a diagnostic and another ask. A nil
// Prompter uses the shared stdin Prompter.
//
// These are functions rather than Prompter methods because Go methods
// cannot take type parameters.
func ReadCustom[T any](p *Prompter, question string, parse func(string) (T, error)) (value T, ok bool, err error) {
	if p == nil {
		p = std
	}
	for {
		raw, err := p.ReadString(question)
		if err != nil {
			return value, false, err
		}
		if raw == "" {
			return value, false, nil
		}
		v, perr := parse(raw)
		if perr == nil {
			return v, true, nil
		}
		if err := p.diag(fmt.Sprintf("%s is not valid", raw)); err != nil {
			return value, false, err
		}
	}
}

// ReadCustomNonEmpty asks question until it gets a line that parses.
// Empty lines and unparsable lines each get their own diagnostic; the
// loop ends only with a value or a propagated stream error.
func ReadCustomNonEmpty[T any](p *Prompter, question string, parse func(string) (T, error)) (value T, err error) {
	if p == nil {
		p = std
	}
	for {
		raw, err := p.ReadStringNonEmpty(question)
		if err != nil {
			return value, err
		}
		v, perr := parse(raw)
		if perr == nil {
			return v, nil
		}
		if err := p.diag(fmt.Sprintf("%s is not valid", raw)); err != nil {
			return value, err
		}
	}
}

// ReadCustomNoQuestion is ReadCustom without any printed prompt, for
// follow-up values after the caller has printed its own.
func ReadCustomNoQuestion[T any](p *Prompter, parse func(string) (T, error)) (value T, ok bool, err error) {
	if p == nil {
		p = std
	}
	for {
		raw, err := p.ReadStringNoQuestion()
		if err != nil {
			return value, false, err
		}
		if raw == "" {
			return value, false, nil
		}
		v, perr := parse(raw)
		if perr == nil {
			return v, true, nil
		}
		if err := p.diag(fmt.Sprintf("%s is not valid", raw)); err != nil {
			return value, false, err
		}
	}
}
