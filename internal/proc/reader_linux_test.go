//go:build linux

package proc

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_RealSelf(t *testing.T) {
	r := NewReader(nil)

	ppid, err := r.SelfParentID()
	require.NoError(t, err)
	assert.Equal(t, uint32(os.Getppid()), ppid)

	name, err := r.CommandName(uint32(os.Getpid()))
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestExecutablePath_Self(t *testing.T) {
	exe, err := ExecutablePath(context.Background(), uint32(os.Getpid()))
	require.NoError(t, err)

	want, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, want, exe)
}
