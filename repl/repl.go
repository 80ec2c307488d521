/*
File    : golox/repl/repl.go
Author  : akashmaji(@iisc.ac.in)

Package repl implements the interactive Read-Eval-Print Loop for golox.
Each line the user types is run against the same Lox session, so a
variable or function defined on one line is visible on the next; a
line's compile error does not poison the lines that follow it, since
the session's diagnostics.Sink is reset between lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/lox"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the
// prompt readline displays.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// NewRepl builds a Repl with the given display text.
func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to golox!")
	cyanColor.Fprintf(writer, "%s\n", "Type a Lox statement and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Press Ctrl+D to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until readline hits EOF (Ctrl+D) or a read error,
// at which point it exits cleanly with no error reported: EOF ending an
// interactive session is normal termination, not a failure.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := lox.New(writer, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)

		session.Run(line)
		// A bad line should not keep the rest of the session from
		// running; only the line that caused it is discarded.
		session.Sink.Reset()
	}
}
