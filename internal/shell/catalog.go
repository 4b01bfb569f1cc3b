package shell

import (
	"regexp"
	"slices"
)

var (
	semverPattern  = regexp.MustCompile(`[0-9]+\.[0-9]+(?:\.[0-9]+)?`)
	releasePattern = regexp.MustCompile(`R[0-9]+`)

	versionFlag = []string{"--version"}
	// mksh has no version flag; the version lives in a builtin variable.
	kshVersionVar = []string{"-c", `printf %s "$KSH_VERSION"`}
)

// Descriptor describes one recognized shell and how to probe its version.
type Descriptor struct {
	// Name is the exact command name as it appears in /proc/<pid>/comm.
	Name string
	// VersionArgs are passed to the shell binary to make it print its
	// version. Nil means the shell offers no reliable self-report.
	VersionArgs []string
	// VersionPattern locates the version in the probe output.
	VersionPattern *regexp.Regexp
}

// Probeable reports whether the shell can be asked for its version.
func (d Descriptor) Probeable() bool {
	return d.VersionArgs != nil
}

// catalog is ordered; the order is for display only.
var catalog = []Descriptor{
	{Name: "bash", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "zsh", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "sh", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "tcsh", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "csh", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "ksh", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "mksh", VersionArgs: kshVersionVar, VersionPattern: releasePattern},
	{Name: "fish", VersionArgs: versionFlag, VersionPattern: semverPattern},
	// dash has no version flag; only the package manager knows its version.
	{Name: "dash", VersionPattern: semverPattern},
	{Name: "nu", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "elvish", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "xonsh", VersionArgs: versionFlag, VersionPattern: semverPattern},
	{Name: "pwsh", VersionArgs: versionFlag, VersionPattern: semverPattern},
}

var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(catalog))
	for _, d := range catalog {
		m[d.Name] = d
	}
	return m
}()

// SupportedShells returns the names of all recognized shells in catalog order.
func SupportedShells() []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}
	return names
}

// Classify returns the descriptor whose name equals commandName exactly.
// It is a membership test, so "bash-completion-helper" or "Bash" do not
// match "bash". The returned VersionArgs is a copy; changing it does not
// affect the catalog.
func Classify(commandName string) (Descriptor, bool) {
	d, ok := byName[commandName]
	if !ok {
		return Descriptor{}, false
	}
	d.VersionArgs = slices.Clone(d.VersionArgs)
	return d, true
}

// IsSupported returns true if name is a recognized shell.
func IsSupported(name string) bool {
	_, ok := byName[name]
	return ok
}
