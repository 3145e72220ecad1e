package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadChoice presents numbered options and returns the 0-based index of
// the user's pick. Options are shown 1-based:
//
//	Language [1: "go", 2: "rust" (default: 1)]:
//
// An empty line returns defaultIdx when it is non-negative; pass a
// negative defaultIdx for no default. Any answer that does not name an
// option gets a diagnostic and the full menu again, without limit.
//
// ReadChoice panics when defaultIdx is not below len(options): a default
// outside the choice set is a bug in the calling program, not user
// error.
func (p *Prompter) ReadChoice(question string, options []string, defaultIdx int) (int, error) {
	if defaultIdx >= len(options) {
		panic(fmt.Sprintf("input: default index %d out of range for %d options", defaultIdx, len(options)))
	}
	for {
		line, err := p.readLine(p.choicePrompt(question, options, defaultIdx))
		if err != nil {
			return 0, err
		}
		if line == "" && defaultIdx >= 0 {
			return defaultIdx, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n <= 0 {
			// "0" and negatives are not option ordinals; they get
			// the same diagnostic as non-numeric input.
			if err := p.diag(fmt.Sprintf("%s is not a valid option", line)); err != nil {
				return 0, err
			}
			continue
		}
		if n-1 < len(options) {
			return n - 1, nil
		}
		if err := p.diag(fmt.Sprintf("%d is not a valid option (too big)", n-1)); err != nil {
			return 0, err
		}
	}
}

// choicePrompt renders the numbered menu with the optional default.
func (p *Prompter) choicePrompt(question string, options []string, defaultIdx int) string {
	var menu strings.Builder
	menu.WriteByte('[')
	for i, opt := range options {
		if i > 0 {
			menu.WriteString(", ")
		}
		fmt.Fprintf(&menu, "%d: %q", i+1, opt)
	}
	if defaultIdx >= 0 {
		fmt.Fprintf(&menu, " (default: %d)", defaultIdx+1)
	}
	menu.WriteByte(']')
	if p.styles != nil {
		return p.styles.Prompt.Render(question) + " " + p.styles.Hint.Render(menu.String()) + ": "
	}
	return question + " " + menu.String() + ": "
}
