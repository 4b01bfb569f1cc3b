package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ZebulonRouseFrantzich/shellver/internal/config"
	"github.com/ZebulonRouseFrantzich/shellver/internal/platform"
	"github.com/ZebulonRouseFrantzich/shellver/internal/shell"
)

type detectOptions struct {
	json       bool
	configPath string
	help       bool
}

func parseDetectArgs(args []string) (detectOptions, error) {
	var opts detectOptions
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--help", "-h":
			opts.help = true
		case "--json":
			opts.json = true
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a path", arg)
			}
			i++
			opts.configPath = args[i]
		default:
			return opts, fmt.Errorf("unknown flag: %s", arg)
		}
	}
	return opts, nil
}

// runDetect handles `shellver detect`, the default command.
func runDetect(args []string) error {
	opts, err := parseDetectArgs(args)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp()
		return nil
	}

	ctx := context.Background()
	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, opts.configPath, info)
	if err != nil {
		return err
	}
	if opts.json {
		cfg.Format = config.FormatJSON
	}
	logger := newLogger(cfg.Debug)

	if err := requireProcFS(info); err != nil {
		return err
	}

	if cfg.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ProbeTimeout)
		defer cancel()
	}

	result, err := shell.NewDetector(shell.WithLogger(logger)).Detect(ctx)
	if err != nil {
		return err
	}
	logger.Debug("detected shell", "name", result.Name, "version", result.Version, "pid", result.PID, "path", result.Path)

	return writeResult(os.Stdout, result, cfg)
}

type jsonResult struct {
	Name    string  `json:"name"`
	Version *string `json:"version"`
	PID     uint32   `json:"pid"`
	Path    string  `json:"path,omitempty"`
}

func writeResult(w io.Writer, result *shell.DetectionResult, cfg *config.Config) error {
	if cfg.Format == config.FormatJSON {
		out := jsonResult{Name: result.Name, PID: result.PID, Path: result.Path}
		if result.HasVersion {
			v := result.Version
			out.Version = &v
		}
		enc := json.NewEncoder(w)
		return enc.Encode(out)
	}
	_, err := fmt.Fprintf(w, "%s %s\n", result.Name, result.VersionOr(cfg.Placeholder))
	return err
}

// loadConfig evaluates the config with info exposed as the platform table.
func loadConfig(ctx context.Context, path string, info *platform.Info) (*config.Config, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.NewParser(platform.Static{Info: info}).Load(ctx, path)
}

func requireProcFS(info *platform.Info) error {
	if !info.Supported() {
		return fmt.Errorf("shell detection requires the Linux /proc filesystem (running on %s)", info.OS)
	}
	return nil
}

// newLogger logs to stderr; debug output is enabled by config or
// SHELLVER_DEBUG.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug || os.Getenv(config.EnvDebug) != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
