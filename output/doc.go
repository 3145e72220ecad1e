// Package output provides styled terminal output for the programs that
// drive interactive prompts.
//
// # Overview
//
// Prompt-heavy tools need a consistent voice for everything around the
// questions: confirmations, summaries, failures, next steps. This
// package gives them one.
//
// # Usage
//
// The package-level functions write to stdout:
//
//	output.Success("Profile saved")
//	output.Info("Next steps:")
//	output.Step("edit profile.yml")
//	output.Error("could not save profile")
//
// A Printer writes the same surface to any writer, which is how the
// tests capture it:
//
//	p := output.NewPrinter(&output.Options{Out: &buf})
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("raw answer accepted after 2 retries")
//
// # Styling
//
// Messages are styled with lipgloss: green bold for success, red bold
// for errors, cyan for info, gray for steps and verbose output. The
// styling is an implementation detail; callers pass plain text.
package output
