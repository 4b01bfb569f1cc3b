package config

// Environment variables read by shellver.
const (
	// EnvConfig overrides the config file location.
	EnvConfig = "SHELLVER_CONFIG"

	// EnvDebug enables debug logging when set to a non-empty value.
	EnvDebug = "SHELLVER_DEBUG"
)

// Lua schema field names and globals
const (
	luaGlobal           = "shellver"
	luaFieldPlaceholder = "placeholder"
	luaFieldFormat      = "format"
	luaFieldDebug       = "debug"
	luaFieldTimeout     = "probe_timeout"
)
