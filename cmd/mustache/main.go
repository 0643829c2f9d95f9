package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newCLI(stdin, stdout, stderr).rootCommand()
	// a nil slice would make cobra fall back to os.Args
	root.SetArgs(append([]string{}, args...))

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return ExitCodeSuccess
	}

	var cliErr *cliError
	if errors.As(err, &cliErr) {
		fmt.Fprintln(stderr, cliErr.Error())
		return cliErr.code
	}

	// flag and argument errors reported by cobra
	fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgUsage, err)
	return ExitCodeUsageError
}

// cliError carries the exit code a failed command ends the process with
type cliError struct {
	code  int
	msg   string
	cause error
}

func newCLIError(code int, msg string, cause error) *cliError {
	return &cliError{code: code, msg: msg, cause: cause}
}

func (e *cliError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *cliError) Unwrap() error {
	return e.cause
}
