// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. The main function checks for this
// interface on returned errors to distinguish "handled non-zero exit"
// from "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitStatus reports err on stderr and returns the process exit code.
// A nil error is 0. Errors carrying their own exit code (ExitCode()
// interface) are not printed. A [ToolError] exits with its category's
// code. Anything else exits 1.
func ExitStatus(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Code()
	}
	return ExitInternal
}
