package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vk/deckgen/decks"
	"github.com/vk/deckgen/internal/app"
)

// Environment variables that provide flag defaults.
const (
	EnvOut       = "DECKGEN_OUT"
	EnvAssets    = "DECKGEN_ASSETS"
	EnvLogLevel  = "DECKGEN_LOG_LEVEL"
	EnvLogFormat = "DECKGEN_LOG_FORMAT"
)

const defaultEnvFile = ".env"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Parse processes command-line arguments against the process environment.
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return ParseWithEnv(args, output, os.LookupEnv)
}

// ParseWithEnv is Parse with an explicit environment. Precedence, highest
// first: flags, the environment, the .env file, built-in defaults.
func ParseWithEnv(args []string, output io.Writer, lookup LookupFunc) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("deckgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
deckgen - Build presentation decks from declarative HCL files.

Usage:
  deckgen [options] [DECK_PATH]

Arguments:
  DECK_PATH
    Path to a single .hcl file or a directory containing .hcl files.
    Without it, the builtin deck selected by -variant is built.

Builtin decks: %s (default %s)

Environment:
  %s, %s, %s, %s
    Defaults for -out, -assets, -log-level and -log-format. They may also
    be set in the file named by -env-file.

Options:
`, strings.Join(decks.Names(), ", "), decks.Default, EnvOut, EnvAssets, EnvLogLevel, EnvLogFormat)
		flagSet.PrintDefaults()
	}

	deckFlag := flagSet.String("deck", "", "Path to the deck file or directory.")
	dFlag := flagSet.String("d", "", "Path to the deck file or directory (shorthand).")
	variantFlag := flagSet.String("variant", "", "Builtin deck to build when no deck path is given.")
	outFlag := flagSet.String("out", "", "Output .pptx path. Defaults to the deck's own output name.")
	oFlag := flagSet.String("o", "", "Output .pptx path (shorthand).")
	assetsFlag := flagSet.String("assets", "assets", "Directory that image paths are resolved against.")
	exportFlag := flagSet.String("export", "", "Write the builtin deck's HCL source into this directory instead of building.")
	inspectFlag := flagSet.Bool("inspect", false, "Read the written deck back and print a summary.")
	listFlag := flagSet.Bool("list", false, "List the builtin decks and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	envFileFlag := flagSet.String("env-file", defaultEnvFile, "Optional .env file with DECKGEN_* defaults.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one deck path, got %d arguments", flagSet.NArg())}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	env, err := readEnvFile(*envFileFlag, set["env-file"])
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	resolve := func(value string, flagNames []string, key string) string {
		for _, name := range flagNames {
			if set[name] {
				return value
			}
		}
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		if v, ok := env[key]; ok && v != "" {
			return v
		}
		return value
	}

	path := firstNonEmpty(*deckFlag, *dFlag, flagSet.Arg(0))
	slog.Debug("Deck path determined.", "path", path)

	out := resolve(firstNonEmpty(*outFlag, *oFlag), []string{"out", "o"}, EnvOut)
	assets := resolve(*assetsFlag, []string{"assets"}, EnvAssets)

	logFormat := strings.ToLower(resolve(*logFormatFlag, []string{"log-format"}, EnvLogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(resolve(*logLevelFlag, []string{"log-level"}, EnvLogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DeckPath:   path,
		Variant:    *variantFlag,
		OutputPath: out,
		AssetsDir:  assets,
		ExportDir:  *exportFlag,
		Inspect:    *inspectFlag,
		List:       *listFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// readEnvFile loads KEY=value pairs without touching the process
// environment. A missing file is only an error when it was asked for.
func readEnvFile(path string, explicit bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	slog.Debug("Env file loaded.", "path", path, "keys", len(env))
	return env, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
