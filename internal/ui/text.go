package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI content.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

var (
	// Code formats commands the user can run. `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats local file paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats flags such as --password.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// URL formats WebDAV server addresses. <angle brackets> without color.
	URL = Formatter{color.New(color.FgBlue, color.Underline), "<", ">"}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values like usernames. 'quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Done prefixes msg with a green check mark.
func Done(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// Failed prefixes msg with a red cross.
func Failed(msg string) string {
	return Error.Sprint("✗") + " " + msg
}

// Hint prefixes msg with a cyan arrow.
func Hint(msg string) string {
	return Info.Sprint("→") + " " + msg
}

// EnsureNewline appends a newline to s unless it already ends with one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor honours NO_COLOR (https://no-color.org/) and fatih/color's own
// terminal detection.
func noColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}
