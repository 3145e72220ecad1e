package input

import "strings"

// Confirm asks a yes/no question. An empty line returns defaultYes,
// shown as [Y/n] or [y/N]. Answers are matched case-insensitively
// against y/yes/n/no; anything else gets a diagnostic and another ask.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	for {
		line, err := p.readLine(p.hintPrompt(question, hint))
		if err != nil {
			return false, err
		}
		if line == "" {
			return defaultYes, nil
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err := p.diag("Please answer yes or no."); err != nil {
			return false, err
		}
	}
}
