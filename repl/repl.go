/*
File    : go-jrq/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive query loop for go-jrq.
The JSON document is loaded once; each input line is parsed and evaluated as
a query against it, and the result is pretty-printed with colors. Errors
render as caret diagnostics and do not end the session.

The REPL uses the readline library for enhanced line editing capabilities
like command history and cursor movement.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/go-jrq/eval"
	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/parser"
)

// Color definitions for REPL output:
// - redColor: parse and evaluation diagnostics
// - cyanColor: informational messages
// - blueColor: separator lines
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
	blueColor = color.New(color.FgBlue)
)

// Repl holds the state of one interactive session.
type Repl struct {
	Banner  string    // Banner printed when the session starts
	Version string    // Tool version shown under the banner
	Line    string    // Separator line used for visual formatting
	Prompt  string    // The input prompt
	Input   json.Json // The loaded document queries run against
}

// NewRepl creates a new REPL over a loaded JSON document.
func NewRepl(banner string, version string, line string, prompt string, input json.Json) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    line,
		Prompt:  prompt,
		Input:   input,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	cyanColor.Fprintf(writer, "%s\n", r.Banner)
	cyanColor.Fprintf(writer, "go-jrq %s\n", r.Version)

	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a query and press enter to run it against the document")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Reads, parses and evaluates one query per line
// 4. Prints the result or a caret diagnostic
//
// The loop continues until the user types '.exit' or EOF is reached.
func (r *Repl) Start(writer io.Writer) error {
	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// Main REPL loop - continues until the user exits
	for {
		// Read a line of input; blocks until the user presses Enter
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g. Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Trim whitespace from the input
		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		r.executeQuery(writer, line)
	}

	return nil
}

// executeQuery parses and evaluates one query line against the loaded
// document. Unlike one-shot execution, the REPL continues running after
// errors, allowing users to correct mistakes and try again.
func (r *Repl) executeQuery(writer io.Writer, line string) {
	// Parse the query into an AST
	node, parseErr := parser.NewParser(line).Parse()
	if parseErr != nil {
		redColor.Fprintf(writer, "%s", parseErr.Format(line))
		return
	}

	// Evaluate against a copy of the document so that queries can never
	// disturb the loaded value
	result, evalErr := eval.Eval(node, json.Copy(r.Input))
	if evalErr != nil {
		redColor.Fprintf(writer, "%s", evalErr.Format(line))
		return
	}

	// Pretty-print the result with colors
	writer.Write([]byte(json.Serialize(result, json.FlagTab|json.FlagColors)))
	writer.Write([]byte("\n"))
}
