package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/svchost/internal/app"
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

// paramFlags collects repeatable -param NAME=VALUE flags into a map.
type paramFlags map[string]string

func (p paramFlags) String() string {
	return fmt.Sprintf("%v", map[string]string(p))
}

func (p paramFlags) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || name == "" {
		return fmt.Errorf("parameter %q must have the form NAME=VALUE", raw)
	}
	p[name] = value
	return nil
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("svchost", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
svchost - hosts a service implementation under one load/process/dispose contract.

Usage:
  svchost [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to the service configuration file (.hcl or .json). Defaults to
    $SERVICE_CONFIG_PATH, then ./service/config.hcl.

Options:
`)
		flagSet.PrintDefaults()
	}

	overrides := paramFlags{}
	configFlag := flagSet.String("config", "", "Path to the service configuration file.")
	cFlag := flagSet.String("c", "", "Path to the service configuration file (shorthand).")
	hostTypeFlag := flagSet.String("host-type", app.DefaultHostType, "Host type key used to pick the configuration's host section.")
	noEnvFlag := flagSet.Bool("no-env", false, "Do not consult SERVICE_-prefixed environment variables.")
	flagSet.Var(overrides, "param", "Explicit parameter override as NAME=VALUE. Repeatable.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	} else {
		path = app.DefaultConfigPath()
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

	var overrideMap map[string]string
	if len(overrides) > 0 {
		overrideMap = overrides
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		HostType:   *hostTypeFlag,
		Overrides:  overrideMap,
		IncludeEnv: !*noEnvFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
