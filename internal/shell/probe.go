package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"unicode/utf8"
)

// Runner executes a command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec. Standard input is not forwarded and
// standard error is discarded. A non-zero exit status is not an error: the
// captured output is returned as is.
type ExecRunner struct{}

// Output implements Runner.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return out, nil
		}
		return nil, err
	}
	return out, nil
}

// Probe asks the shell described by d for its version. ok is false when the
// shell has no self-report mechanism or when its output holds no version;
// neither case is an error. Shells without VersionArgs are never executed.
func Probe(ctx context.Context, runner Runner, d Descriptor) (version string, ok bool, err error) {
	if !d.Probeable() {
		return "", false, nil
	}

	out, err := runner.Output(ctx, d.Name, d.VersionArgs...)
	if err != nil {
		return "", false, &ProbeError{Shell: d.Name, Err: err}
	}
	if !utf8.Valid(out) {
		return "", false, &ProbeError{Shell: d.Name, Err: fmt.Errorf("%w: output is not valid UTF-8", ErrInvalidData)}
	}

	version, ok = ExtractVersion(d, string(out))
	return version, ok, nil
}

// ExtractVersion returns the first match of the descriptor's version pattern
// in text.
func ExtractVersion(d Descriptor, text string) (string, bool) {
	if d.VersionPattern == nil {
		return "", false
	}
	loc := d.VersionPattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}
