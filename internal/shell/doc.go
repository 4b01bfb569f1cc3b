// Package shell detects the interactive shell that launched the current
// process.
//
// Detection does not trust $SHELL, which names the login shell and is easily
// stale. Instead it walks the parent chain of the calling process through
// /proc and stops at the first ancestor whose command name is a known shell:
//
//	bash zsh sh tcsh csh ksh mksh fish dash nu elvish xonsh pwsh
//
// # Closest Shell Wins
//
// When shells are nested (zsh started from bash, say) the closest ancestor is
// reported, because it is the one controlling the caller's terminal session.
// The walk is bounded by MaxHops and by the root process.
//
// # Versions
//
// Once a shell is found it is executed once to report its version:
//   - most shells: `<shell> --version`, first `major.minor[.patch]` match
//   - mksh: prints $KSH_VERSION, first `R<digits>` match
//   - dash: never executed, the version is always absent
//
// An absent version is a successful result. Failures to read /proc, to run
// the shell, or to decode its output are returned unchanged; nothing is
// retried or skipped.
//
// # Example Usage
//
//	result, err := shell.Detect(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Name, result.VersionOr("unknown"))
//
// The /proc reader and the command runner can be replaced for tests:
//
//	d := shell.NewDetector(
//	    shell.WithFileReader(fakeFS),
//	    shell.WithRunner(fakeRunner),
//	)
package shell
