/*
File    : go-jrq/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-jrq JSON query tool.
It reads a JSON document from standard input (or a file), evaluates the
query given on the command line against it, and writes the resulting JSON
to standard output.

Modes of operation:
1. One-shot (default): go-jrq '.foo.map(|x| x*2).collect' < doc.json
2. Interactive: go-jrq --interactive --file doc.json

The tool uses a lexer-parser-evaluator pipeline; output is indented and
colored when stdout is a terminal, compact otherwise.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	charmlog "charm.land/log/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/go-jrq/eval"
	jrqerrors "github.com/akashmaji946/go-jrq/errors"
	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/parser"
	"github.com/akashmaji946/go-jrq/repl"
)

// VERSION represents the current version of go-jrq
var VERSION = "v1.0.0"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in interactive mode
var PROMPT = "go-jrq >>> "

// BANNER is the logo displayed when starting the interactive mode
var BANNER = `
   ▄▄▄▄   ▄▄▄▄          ▄▄  ▄▄▄▄   ▄▄▄▄▄
  ██▀▀██ ██▀▀██         ▀▀  ██▀▀█▄██▀▀██
  ██  ██ ██  ██  ▄▄▄▄   ██  ██  ▀▀██  ██
  ▀██▄██ ▀██▄██ ▀▀▀▀▀   ██  ██    ▀██▄██
   ▄▄▄█▀  ▀▀▀▀          ██  ▀▀      ▄▄█▀
   ▀▀▀                ▄▄█▀         ▀▀▀
`

// LINE is a separator line used for visual formatting in interactive mode
var LINE = "----------------------------------------------------------------"

// Color definitions for diagnostics:
// - redColor: parse, deserialize and evaluation errors
// - cyanColor: informational output
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// logger emits pipeline timing diagnostics on stderr when --debug is set.
var logger = charmlog.New(os.Stderr)

// Command-line flags.
var (
	flagFile        string // read the document from a file instead of stdin
	flagCompact     bool   // force compact output
	flagTab         bool   // force indented output
	flagColor       bool   // force colored output
	flagMonochrome  bool   // force monochrome output
	flagInteractive bool   // start the interactive query loop
	flagDebug       bool   // enable timing logs
)

// rootCmd is the single cobra command driving the tool.
var rootCmd = &cobra.Command{
	Use:     "go-jrq [QUERY]",
	Short:   "Evaluate a query expression against a JSON document",
	Long:    "go-jrq reads a JSON document from standard input, evaluates a query\nexpression against it, and writes the resulting JSON to standard output.",
	Version: VERSION,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "read the JSON document from a file instead of stdin")
	rootCmd.Flags().BoolVarP(&flagCompact, "compact", "c", false, "force compact output")
	rootCmd.Flags().BoolVarP(&flagTab, "tab", "t", false, "force indented output")
	rootCmd.Flags().BoolVar(&flagColor, "color", false, "force colored output")
	rootCmd.Flags().BoolVarP(&flagMonochrome, "monochrome", "M", false, "force monochrome output")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "start an interactive query session")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log pipeline timings to stderr")
}

// main is the entry point of go-jrq.
func main() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run executes one invocation: load the document, then either start the
// interactive loop or evaluate the query and print the result.
func run(cmd *cobra.Command, args []string) error {
	if flagDebug {
		logger.SetLevel(charmlog.DebugLevel)
	}

	// Let an interactive user know the tool is waiting on them
	if flagFile == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		cyanColor.Fprintf(os.Stderr, "reading JSON document from stdin until EOF\n")
	}

	// Read the JSON document
	data, err := readInput()
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read input: %v\n", err)
		os.Exit(1)
	}
	src := string(data)

	started := time.Now()
	doc, deserializeErr := json.Deserialize(src)
	if deserializeErr != nil {
		printDiagnostic(deserializeErr, src)
		os.Exit(1)
	}
	logger.Debug("deserialized input", "bytes", len(data), "took", time.Since(started))

	// Interactive mode: load once, query repeatedly
	if flagInteractive {
		repler := repl.NewRepl(BANNER, VERSION, LINE, PROMPT, doc)
		return repler.Start(os.Stdout)
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	started = time.Now()
	node, parseErr := parser.NewParser(query).Parse()
	if parseErr != nil {
		printDiagnostic(parseErr, query)
		os.Exit(1)
	}
	logger.Debug("parsed query", "query", query, "took", time.Since(started))

	started = time.Now()
	result, evalErr := eval.Eval(node, doc)
	if evalErr != nil {
		printDiagnostic(evalErr, query)
		os.Exit(1)
	}
	logger.Debug("evaluated query", "took", time.Since(started))

	fmt.Println(json.Serialize(result, outputFlags()))
	return nil
}

// readInput returns the document bytes from --file or stdin.
func readInput() ([]byte, error) {
	if flagFile != "" {
		return os.ReadFile(flagFile)
	}
	return io.ReadAll(os.Stdin)
}

// outputFlags decides the serializer flags: indented and colored when stdout
// is a terminal, compact otherwise, with explicit flags taking precedence.
func outputFlags() json.SerializeFlags {
	tty := isatty.IsTerminal(os.Stdout.Fd())

	flags := json.SerializeFlags(0)
	if (tty || flagTab) && !flagCompact {
		flags |= json.FlagTab
	}
	if (tty || flagColor) && !flagMonochrome {
		flags |= json.FlagColors
	}
	return flags
}

// printDiagnostic renders a ranged error as a caret diagnostic on stderr.
func printDiagnostic(err *jrqerrors.JrqError, src string) {
	redColor.Fprintf(os.Stderr, "%s", err.Format(src))
}
