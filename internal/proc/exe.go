package proc

import (
	"context"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/process"
)

// PathLookup resolves the executable path of a live process.
type PathLookup func(ctx context.Context, pid uint32) (string, error)

// ExecutablePath returns the resolved executable of pid using gopsutil.
func ExecutablePath(ctx context.Context, pid uint32) (string, error) {
	if pid > math.MaxInt32 {
		return "", fmt.Errorf("pid %d out of range", pid)
	}
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return "", fmt.Errorf("open process %d: %w", pid, err)
	}
	exe, err := p.ExeWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve executable of %d: %w", pid, err)
	}
	return exe, nil
}
