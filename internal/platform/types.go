// Package platform reports the host platform shellver runs on.
//
// Shell detection needs the Linux /proc pseudo-filesystem. This package tells
// the CLI whether that is available and exposes the platform to Lua
// configuration as a read-only table.
package platform

import "context"

// Info contains platform detection information.
type Info struct {
	OS            string // runtime.GOOS
	Arch          string // runtime.GOARCH
	Platform      string // distro ID, Linux only (e.g. "ubuntu")
	Family        string // distro family, Linux only (e.g. "debian")
	Version       string // distro version, Linux only (e.g. "24.04")
	KernelVersion string // e.g. "6.8.0-45-generic"
	HasProcFS     bool   // /proc/self/status is readable
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// Supported reports whether ancestry-based shell detection can work here.
func (i *Info) Supported() bool {
	return i.IsLinux() && i.HasProcFS
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// Static is a Detector that always returns the same Info, so one detection
// can be shared by several consumers.
type Static struct {
	Info *Info
}

// Detect returns s.Info.
func (s Static) Detect(ctx context.Context) (*Info, error) {
	return s.Info, nil
}
