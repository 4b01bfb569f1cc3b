package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZebulonRouseFrantzich/shellver/internal/platform"
)

// runPlatform handles `shellver platform`
func runPlatform(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("platform takes no arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return err
	}
	return writePlatform(os.Stdout, info)
}

func writePlatform(w io.Writer, info *platform.Info) error {
	orUnknown := func(s string) string {
		if s == "" {
			return "unknown"
		}
		return s
	}

	_, err := fmt.Fprintf(w,
		"os:        %s/%s\nkernel:    %s\ndistro:    %s %s (%s)\nprocfs:    %t\nsupported: %t\n",
		info.OS, info.Arch,
		orUnknown(info.KernelVersion),
		orUnknown(info.Platform), info.Version, orUnknown(info.Family),
		info.HasProcFS,
		info.Supported(),
	)
	return err
}
