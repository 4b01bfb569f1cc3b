package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/ZebulonRouseFrantzich/shellver/internal/platform"
)

// Parser evaluates Lua configuration with platform detection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a parser. A nil detector omits the platform table.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Path    string // empty for in-memory configs
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// Load reads the config at path. A missing file is not an error and yields
// Default().
func (p *Parser) Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := p.ParseString(ctx, string(data))
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// ParseString parses a Lua config from a string.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua error",
			Detail:  trimTraceback(err.Error()),
		}
	}

	return extractConfig(L)
}

// extractConfig reads the global shellver table. An absent table means
// defaults.
func extractConfig(L *lua.LState) (*Config, error) {
	cfg := Default()

	global := L.GetGlobal(luaGlobal)
	switch global.Type() {
	case lua.LTNil:
		return cfg, nil
	case lua.LTTable:
	default:
		return nil, &ParseError{
			Message: fmt.Sprintf("invalid '%s' table", luaGlobal),
			Detail:  fmt.Sprintf("expected table, got %s", global.Type()),
		}
	}
	table := global.(*lua.LTable)

	if v := table.RawGetString(luaFieldPlaceholder); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return nil, fieldTypeError(luaFieldPlaceholder, "string", v)
		}
		cfg.Placeholder = string(s)
	}

	if v := table.RawGetString(luaFieldFormat); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return nil, fieldTypeError(luaFieldFormat, "string", v)
		}
		cfg.Format = strings.ToLower(string(s))
	}

	if v := table.RawGetString(luaFieldDebug); v != lua.LNil {
		b, ok := v.(lua.LBool)
		if !ok {
			return nil, fieldTypeError(luaFieldDebug, "boolean", v)
		}
		cfg.Debug = bool(b)
	}

	if v := table.RawGetString(luaFieldTimeout); v != lua.LNil {
		n, ok := v.(lua.LNumber)
		if !ok {
			return nil, fieldTypeError(luaFieldTimeout, "number", v)
		}
		timeout, err := secondsToDuration(float64(n))
		if err != nil {
			return nil, &ParseError{
				Message: fmt.Sprintf("invalid field %s.%s", luaGlobal, luaFieldTimeout),
				Detail:  err.Error(),
			}
		}
		cfg.ProbeTimeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  err.Error(),
		}
	}
	return cfg, nil
}

// maxSeconds is the largest whole number of seconds a time.Duration holds.
const maxSeconds = float64(math.MaxInt64 / int64(time.Second))

// secondsToDuration converts a Lua number of seconds. Negative values pass
// through so Validate can report them.
func secondsToDuration(s float64) (time.Duration, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) || math.Abs(s) > maxSeconds {
		return 0, fmt.Errorf("%s out of range: %v", luaFieldTimeout, s)
	}
	return time.Duration(s * float64(time.Second)), nil
}

func fieldTypeError(field, want string, got lua.LValue) error {
	return &ParseError{
		Message: fmt.Sprintf("invalid field %s.%s", luaGlobal, field),
		Detail:  fmt.Sprintf("expected %s, got %s", want, got.Type()),
	}
}

func trimTraceback(detail string) string {
	if idx := strings.Index(detail, "stack traceback"); idx > 0 {
		return strings.TrimSpace(detail[:idx])
	}
	return detail
}

// DefaultPath returns the config file location: $SHELLVER_CONFIG, then
// $XDG_CONFIG_HOME/shellver/config.lua, then ~/.config/shellver/config.lua.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shellver", "config.lua"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "shellver", "config.lua"), nil
}
