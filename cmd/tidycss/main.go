package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	tidycss "github.com/tidycss/tidycss"
	"github.com/tidycss/tidycss/internal/config"
	"github.com/tidycss/tidycss/internal/engine"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/log"
	"github.com/tidycss/tidycss/internal/output"
	"github.com/tidycss/tidycss/internal/rule"
	"github.com/tidycss/tidycss/internal/worker"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/tidycss/tidycss/internal/rules/all"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: tidycss <command> [flags] [files...]

Commands:
  check     Lint CSS files (default when given file arguments)
  rules     List built-in rules
  worker    Serve lint requests as line-delimited JSON on stdin/stdout
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'tidycss <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Handle global flags before subcommand dispatch.
	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Dispatch to subcommand.
	switch first {
	case "check":
		return runCheck(os.Args[2:])
	case "rules":
		return runRules(os.Args[2:])
	case "worker":
		return runWorker(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "tidycss: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("tidycss %s\n", version)
}

// runCheck implements the "check" subcommand: lint files.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
		quiet      bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tidycss check [flags] [files...]\n\n"+
			"Lint CSS files for correctness, compatibility and performance issues.\n\n"+
			"Files can be paths, directories (walked recursively for *.css), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := &log.Logger{Enabled: verbose, W: os.Stderr}
	files := fs.Args()

	// No file args: check if stdin is a pipe.
	if len(files) == 0 {
		if !isStdinPipe() {
			return 0
		}
		return checkStdin(format, noColor, quiet, configPath, logger)
	}

	return checkFiles(files, configPath, format, noColor, quiet, logger)
}

// runRules implements the "rules" subcommand: list built-in rules.
func runRules(args []string) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tidycss rules [id|name]\n\n"+
			"List built-in rules, or show one rule's details.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		return showRule(fs.Arg(0))
	}

	for _, r := range tidycss.ListRules() {
		fmt.Printf("%-28s %-55s %s\n", r.ID, r.Name, r.Description)
	}
	return 0
}

func showRule(query string) int {
	info, err := tidycss.LookupRule(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidycss: %v\n", err)
		return 2
	}

	fmt.Printf("%s: %s\n%s\n", info.ID, info.Name, info.Description)
	if info.URL != "" {
		fmt.Printf("url: %s\n", info.URL)
	}
	if info.Browsers != "" {
		fmt.Printf("browsers: %s\n", info.Browsers)
	}
	return 0
}

// runWorker implements the "worker" subcommand: serve JSON requests.
func runWorker(args []string) int {
	fs := flag.NewFlagSet("worker", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tidycss worker\n\n"+
			"Read newline-delimited JSON requests from stdin and write one\n"+
			"JSON response per line to stdout. Commands: rules, info, verify, parse.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := worker.New(rule.Default()).Serve(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tidycss: %v\n", err)
		return 2
	}
	return 0
}

// checkFiles lints the given file paths and returns the appropriate exit code.
func checkFiles(fileArgs []string, configPath, format string, noColor, quiet bool, logger *log.Logger) int {
	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidycss: %v\n", err)
		return 2
	}

	files, err := lint.ResolveFiles(fileArgs, cfg.Ignore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidycss: %v\n", err)
		return 2
	}

	if len(files) == 0 {
		return 0
	}

	formatter := newFormatter(format, noColor)
	exit := 0

	for _, file := range files {
		logger.Printf("checking %s", file)

		source, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tidycss: %v\n", err)
			return 2
		}

		ruleset := config.Ruleset(config.Effective(cfg, file))
		report := engine.Verify(rule.Default(), string(source), ruleset)

		if len(report.Messages) > 0 {
			exit = 1
			if !quiet {
				if err := formatter.Format(os.Stderr, file, report); err != nil {
					fmt.Fprintf(os.Stderr, "tidycss: error writing output: %v\n", err)
					return 2
				}
			}
		}
	}

	return exit
}

// checkStdin reads from stdin, lints the content, and returns the
// appropriate exit code.
func checkStdin(format string, noColor, quiet bool, configPath string, logger *log.Logger) int {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidycss: reading stdin: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidycss: %v\n", err)
		return 2
	}

	ruleset := config.Ruleset(cfg.Rules)
	report := engine.Verify(rule.Default(), string(source), ruleset)

	if len(report.Messages) == 0 {
		return 0
	}

	if !quiet {
		if err := newFormatter(format, noColor).Format(os.Stderr, "<stdin>", report); err != nil {
			fmt.Fprintf(os.Stderr, "tidycss: error writing output: %v\n", err)
			return 2
		}
	}
	return 1
}

func newFormatter(format string, noColor bool) output.Formatter {
	switch format {
	case "json":
		return &output.JSONFormatter{}
	default:
		return &output.TextFormatter{Color: !noColor}
	}
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string, logger *log.Logger) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath != "" {
		logger.Printf("config: %s", configPath)
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return config.Merge(defaults, loaded), nil
	}

	// Try to discover a config file.
	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), nil
	}

	logger.Printf("config: %s", discovered)
	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}

	return config.Merge(defaults, loaded), nil
}
