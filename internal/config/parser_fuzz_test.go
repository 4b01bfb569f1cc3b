package config

import (
	"context"
	"testing"
)

func FuzzParser_ParseString(f *testing.F) {
	f.Add(`shellver = { placeholder = "-" }`)
	f.Add(`shellver = { format = "json", probe_timeout = 3 }`)
	f.Add(`shellver = 1`)

	parser := NewParser(nil)

	f.Fuzz(func(t *testing.T, luaCode string) {
		cfg, err := parser.ParseString(context.Background(), luaCode)
		if err == nil {
			if verr := cfg.Validate(); verr != nil {
				t.Errorf("ParseString(%q) returned invalid config: %v", luaCode, verr)
			}
		}
	})
}
