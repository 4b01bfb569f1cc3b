package shell

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and returns canned output.
type fakeRunner struct {
	out   []byte
	err   error
	calls []string
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, name)
	return f.out, f.err
}

func descriptor(t *testing.T, name string) Descriptor {
	t.Helper()
	d, ok := Classify(name)
	require.True(t, ok, "unknown shell %s", name)
	return d
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name   string
		shell  string
		output string
		want   string
		wantOK bool
	}{
		{"bash", "bash", "GNU bash, version 5.3.9(1)-release (x86_64-pc-linux-gnu)", "5.3.9", true},
		{"bash short", "bash", "bash 5.2.0", "5.2.0", true},
		{"zsh", "zsh", "zsh 5.9 (x86_64-pc-linux-gnu)", "5.9", true},
		{"ksh", "ksh", "  version         sh (AT&T Research) 2020.0.0", "2020.0.0", true},
		{"elvish build suffix", "elvish", "0.21.0+archlinux1", "0.21.0", true},
		{"fish", "fish", "fish, version 3.7.1", "3.7.1", true},
		{"nu", "nu", "0.99.1\n", "0.99.1", true},
		{"pwsh", "pwsh", "PowerShell 7.4.5", "7.4.5", true},
		{"tcsh", "tcsh", "tcsh 6.24.10 (Astron) 2023-04-14 (x86_64-unknown-linux) options wide,nls", "6.24.10", true},
		{"first match wins", "xonsh", "xonsh/0.14.4 python 3.12.3", "0.14.4", true},
		{"mksh", "mksh", "@(#)MIRBSD KSH R59 2020/10/31", "R59", true},
		{"mksh ignores dotted", "mksh", "1.2.3", "", false},
		{"no version", "bash", "usage: bash [options]", "", false},
		{"single number", "sh", "version 5", "", false},
		{"empty", "zsh", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := descriptor(t, tt.shell)
			got, ok := ExtractVersion(d, tt.output)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)

			again, okAgain := ExtractVersion(d, tt.output)
			assert.Equal(t, got, again)
			assert.Equal(t, ok, okAgain)
		})
	}
}

func TestExtractVersion_NilPattern(t *testing.T) {
	_, ok := ExtractVersion(Descriptor{Name: "x"}, "1.2.3")
	assert.False(t, ok)
}

func TestProbe(t *testing.T) {
	r := &fakeRunner{out: []byte("GNU bash, version 5.2.21(1)-release")}
	version, ok, err := Probe(context.Background(), r, descriptor(t, "bash"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5.2.21", version)
	assert.Equal(t, []string{"bash"}, r.calls)
}

func TestProbe_Mksh(t *testing.T) {
	r := &fakeRunner{out: []byte("@(#)MIRBSD KSH R59 2020/10/31")}
	version, ok, err := Probe(context.Background(), r, descriptor(t, "mksh"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "R59", version)
}

func TestProbe_DashNeverRuns(t *testing.T) {
	r := &fakeRunner{err: errors.New("must not run")}
	version, ok, err := Probe(context.Background(), r, descriptor(t, "dash"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, version)
	assert.Empty(t, r.calls)
}

func TestProbe_NoVersionInOutput(t *testing.T) {
	r := &fakeRunner{out: []byte("no version here")}
	_, ok, err := Probe(context.Background(), r, descriptor(t, "zsh"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProbe_InvalidUTF8(t *testing.T) {
	for _, name := range []string{"bash", "mksh", "fish"} {
		t.Run(name, func(t *testing.T) {
			r := &fakeRunner{out: []byte{0xff, 0xfe}}
			_, _, err := Probe(context.Background(), r, descriptor(t, name))
			require.ErrorIs(t, err, ErrInvalidData)

			var probeErr *ProbeError
			require.True(t, errors.As(err, &probeErr))
			assert.Equal(t, name, probeErr.Shell)
		})
	}
}

func TestProbe_RunnerError(t *testing.T) {
	r := &fakeRunner{err: exec.ErrNotFound}
	_, _, err := Probe(context.Background(), r, descriptor(t, "nu"))
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecRunner_NotFound(t *testing.T) {
	_, err := ExecRunner{}.Output(context.Background(), "shellver-no-such-binary")
	require.ErrorIs(t, err, exec.ErrNotFound)
}
