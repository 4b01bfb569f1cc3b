package shell

import (
	"context"

	"github.com/ZebulonRouseFrantzich/shellver/internal/proc"
)

// Detector walks the ancestry of the calling process looking for a shell.
type Detector struct {
	reader     *proc.Reader
	runner     Runner
	logger     Logger
	pathLookup proc.PathLookup
}

// Option configures a Detector.
type Option func(*Detector)

// WithFileReader replaces the /proc reader.
func WithFileReader(files proc.FileReader) Option {
	return func(d *Detector) {
		d.reader = proc.NewReader(files)
	}
}

// WithRunner replaces the command runner used to probe versions.
func WithRunner(r Runner) Option {
	return func(d *Detector) {
		d.runner = r
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(d *Detector) {
		d.logger = l
	}
}

// WithPathLookup sets how the executable path of the matched shell is
// resolved. A nil lookup leaves DetectionResult.Path empty.
func WithPathLookup(fn proc.PathLookup) Option {
	return func(d *Detector) {
		d.pathLookup = fn
	}
}

// NewDetector creates a Detector backed by /proc and os/exec unless
// overridden by opts.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		reader:     proc.NewReader(nil),
		runner:     ExecRunner{},
		logger:     noopLogger{},
		pathLookup: proc.ExecutablePath,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = noopLogger{}
	}
	return d
}

// Detect returns the closest ancestor of the calling process that is a known
// shell, together with its version when the shell can report one.
//
// The walk starts at the parent of the calling process and stops at the
// first match, at the root process, or after MaxHops hops. A failure to read
// any ancestor aborts detection with that failure.
func (d *Detector) Detect(ctx context.Context) (*DetectionResult, error) {
	pid, err := d.reader.SelfParentID()
	if err != nil {
		return nil, err
	}

	for hops := 0; pid > 1 && hops < MaxHops; hops++ {
		name, err := d.reader.CommandName(pid)
		if err != nil {
			return nil, err
		}

		desc, ok := Classify(name)
		if ok {
			d.logger.Debug("shell ancestor found", "pid", pid, "name", name, "hops", hops)
			return d.found(ctx, pid, desc)
		}
		d.logger.Debug("skipping ancestor", "pid", pid, "name", name, "hops", hops)

		pid, err = d.reader.ParentID(pid)
		if err != nil {
			return nil, err
		}
	}

	d.logger.Debug("ancestry exhausted", "last_pid", pid)
	return nil, ErrShellNotFound
}

func (d *Detector) found(ctx context.Context, pid uint32, desc Descriptor) (*DetectionResult, error) {
	version, ok, err := Probe(ctx, d.runner, desc)
	if err != nil {
		return nil, err
	}
	if !ok {
		d.logger.Debug("no version reported", "shell", desc.Name)
	}

	result := &DetectionResult{
		Name:       desc.Name,
		Version:    version,
		HasVersion: ok,
		PID:        pid,
	}

	// Path is informational only.
	if d.pathLookup != nil {
		if path, err := d.pathLookup(ctx, pid); err == nil {
			result.Path = path
		} else {
			d.logger.Debug("executable path unavailable", "pid", pid, "error", err)
		}
	}

	return result, nil
}

// Detect detects the current shell using /proc and os/exec.
func Detect(ctx context.Context) (*DetectionResult, error) {
	return NewDetector().Detect(ctx)
}
