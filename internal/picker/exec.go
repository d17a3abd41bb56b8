package picker

import (
	"errors"
	"os/exec"
	"strings"
)

// Result is the outcome of one dialog process invocation. A non-nil error
// from run means the process could not be spawned at all; otherwise
// ExitCode distinguishes a confirmed choice (0) from a dismissal.
type Result struct {
	Output   string
	ExitCode int
}

// Choice returns the user's selection: stdout trimmed of the trailing
// line terminator.
func (r Result) Choice() string {
	return strings.TrimRight(r.Output, "\n")
}

func run(name string, args ...string) (Result, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, err
		}
		return Result{Output: string(out), ExitCode: exitErr.ExitCode()}, nil
	}
	return Result{Output: string(out), ExitCode: 0}, nil
}
