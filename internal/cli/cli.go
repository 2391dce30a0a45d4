package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/componentui/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("componentui", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
componentui - Inspect and edit logged component data through component UIs.

Usage:
  componentui [options] [DATA_PATH...]

Arguments:
  DATA_PATH
    Path to a single .hcl file or a directory containing .hcl files with
    component manifests and logged data.

Examples:
  componentui -entity '/points[1]' ./data
  componentui -entity /points -edit components.Color -input Color.r=10 ./data

Options:
`)
		flagSet.PrintDefaults()
	}

	var dataFlags, inputFlags stringList
	flagSet.Var(&dataFlags, "data", "Path to a data file or directory. May be repeated.")
	flagSet.Var(&inputFlags, "input", "Scripted widget input as id=value. May be repeated.")
	dbFlag := flagSet.String("db", "", "Path to a SQLite store. Empty keeps data in memory.")
	entityFlag := flagSet.String("entity", "", "Entity to render, e.g. '/points' or '/points[3]'. Empty renders all.")
	timelineFlag := flagSet.String("timeline", "", "Timeline of the latest-at query. Empty queries static data.")
	atFlag := flagSet.Int64("at", 0, "Time on the timeline of the latest-at query.")
	layoutFlag := flagSet.String("layout", "selection", "UI layout. Options: 'list', 'selection' or 'tooltip'.")
	editFlag := flagSet.String("edit", "", "Component type key to edit on the entity.")
	writePathFlag := flagSet.String("write-path", "", "Entity edits are committed to. Defaults to the rendered entity.")
	tuiFlag := flagSet.Bool("tui", false, "Draw onto the terminal and wait for a key.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := append([]string(dataFlags), flagSet.Args()...)
	slog.Debug("Data paths determined.", "paths", paths)

	if len(paths) == 0 && *dbFlag == "" {
		slog.Debug("No data path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DataPaths: paths,
		DBPath:    *dbFlag,
		Entity:    *entityFlag,
		Timeline:  *timelineFlag,
		At:        *atFlag,
		Layout:    strings.ToLower(*layoutFlag),
		EditKey:   *editFlag,
		WritePath: *writePathFlag,
		Inputs:    inputFlags,
		Terminal:  *tuiFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
