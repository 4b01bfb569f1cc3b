package platform

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/ZebulonRouseFrantzich/shellver/internal/proc"
)

// RealDetector implements Detector using gopsutil.
type RealDetector struct {
	// statusPath is probed to decide HasProcFS.
	statusPath string
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{statusPath: proc.SelfStatusPath}
}

// Detect returns platform information. Distro and kernel lookups are best
// effort: when gopsutil cannot determine them the fields stay empty. Only a
// cancelled context is an error.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	if info.IsLinux() {
		platform, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		if err == nil {
			info.Platform = normalize(platform)
			info.Family = normalize(family)
			info.Version = normalize(version)
		}

		if _, err := os.Stat(d.statusPath); err == nil {
			info.HasProcFS = true
		}
	}

	kernel, err := host.KernelVersionWithContext(ctx)
	if err != nil && ctx.Err() != nil {
		return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
	}
	if err == nil {
		info.KernelVersion = strings.TrimSpace(kernel)
	}

	return info, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
