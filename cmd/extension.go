package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions. Extensions read the other
// PROP_* variables from the environment they inherit.
const (
	EnvCurrency = "PROP_CURRENCY"
	EnvFormat   = "PROP_FORMAT"
	EnvVerbose  = "PROP_VERBOSE"
)

// RunExtension attempts to find and execute an external prop-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "prop-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		tracef("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvCurrency+"="+*currency,
		EnvFormat+"="+*format,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	tracef("%s done", externalCmdName)
	return true, 0
}
