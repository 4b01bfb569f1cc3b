package shell

import (
	"errors"
	"fmt"

	"github.com/ZebulonRouseFrantzich/shellver/internal/proc"
)

// MaxHops bounds the ancestry walk. It guards against cycles caused by
// reparenting races and is far above any realistic shell nesting depth.
const MaxHops = 32

var (
	// ErrNotFound matches every "missing" failure: a status record without a
	// PPid line, or an ancestry walk that found no shell.
	ErrNotFound = proc.ErrNotFound

	// ErrInvalidData matches unparsable PPid values and shell output that is
	// not valid text.
	ErrInvalidData = proc.ErrInvalidData

	// ErrShellNotFound is returned when no ancestor within MaxHops, and below
	// the root process, is a known shell.
	ErrShellNotFound = fmt.Errorf("shell %w", ErrNotFound)
)

// DetectionResult contains the result of shell detection
type DetectionResult struct {
	// Name is the catalog name of the detected shell
	Name string
	// Version is the self-reported version, valid only when HasVersion is set
	Version string
	// HasVersion is false when the shell cannot report a version or its
	// output contained none
	HasVersion bool
	// PID is the process id of the matched ancestor
	PID uint32
	// Path is the executable of the matched ancestor, empty if unresolved
	Path string
}

// VersionOr returns the version, or placeholder when there is none.
func (r *DetectionResult) VersionOr(placeholder string) string {
	if r.HasVersion {
		return r.Version
	}
	return placeholder
}

// String formats the result as "<name> <version>", leaving the version empty
// when absent.
func (r *DetectionResult) String() string {
	return r.Name + " " + r.VersionOr("")
}

// ProbeError represents a failure while asking a shell for its version
type ProbeError struct {
	Shell string
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s version: %v", e.Shell, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means that something expected was absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
