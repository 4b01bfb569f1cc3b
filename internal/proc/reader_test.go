package proc

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory FileReader keyed by path.
type memFS struct {
	files map[string]string
	errs  map[string]error
	reads []string
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	m.reads = append(m.reads, path)
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	text, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(text), nil
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/proc/self/status", SelfStatusPath)
	assert.Equal(t, "/proc/42/status", StatusPath(42))
	assert.Equal(t, "/proc/42/comm", CommPath(42))
}

func TestParseParentID(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		want    uint32
		wantErr error
	}{
		{"tab separated", "Name:\tbash\nPPid:\t123\n", 123, nil},
		{"only line", "PPid:\t100\n", 100, nil},
		{"spaces", "PPid:   7\n", 7, nil},
		{"zero", "PPid:\t0\n", 0, nil},
		{"no trailing newline", "Name:\tzsh\nPPid:\t55", 55, nil},
		{"first PPid wins", "PPid:\t3\nPPid:\t4\n", 3, nil},
		{"missing", "Name:\tbash\nPid:\t12\n", 0, ErrNotFound},
		{"empty", "", 0, ErrNotFound},
		{"not a number", "Name:\tbash\nPPid:\tbad\n", 0, ErrInvalidData},
		{"negative", "PPid:\t-1\n", 0, ErrInvalidData},
		{"empty value", "PPid:\n", 0, ErrInvalidData},
		{"above int32", "PPid:\t2147483648\n", 2147483648, nil},
		{"max uint32", "PPid:\t4294967295\n", 4294967295, nil},
		{"overflow", "PPid:\t4294967296\n", 0, ErrInvalidData},
		{"label must be at line start", "TracerPPid:\t9\n", 0, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParentID([]byte(tt.status))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_SelfParentID(t *testing.T) {
	m := &memFS{files: map[string]string{"/proc/self/status": "Name:\tshellver\nPPid:\t100\n"}}
	got, err := NewReader(m).SelfParentID()
	require.NoError(t, err)
	assert.Equal(t, uint32(100), got)
	assert.Equal(t, []string{"/proc/self/status"}, m.reads)
}

func TestReader_ParentIDErrors(t *testing.T) {
	denied := &fs.PathError{Op: "open", Path: "/proc/1/status", Err: fs.ErrPermission}
	m := &memFS{
		files: map[string]string{"/proc/2/status": "Name:\tkthreadd\n"},
		errs:  map[string]error{"/proc/1/status": denied},
	}
	r := NewReader(m)

	_, err := r.ParentID(1)
	require.ErrorIs(t, err, fs.ErrPermission)
	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, "1", recErr.PID)
	assert.Equal(t, "status", recErr.Record)

	_, err = r.ParentID(2)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = r.ParentID(3)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReader_CommandName(t *testing.T) {
	tests := []struct {
		name string
		comm string
		want string
	}{
		{"trailing newline", "bash\n", "bash"},
		{"no newline", "zsh", "zsh"},
		{"only one newline trimmed", "fish\n\n", "fish\n"},
		{"crlf", "nu\r\n", "nu"},
		{"case kept", "Bash\n", "Bash"},
		{"spaces kept", " sh \n", " sh "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &memFS{files: map[string]string{"/proc/100/comm": tt.comm}}
			got, err := NewReader(m).CommandName(100)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_CommandNameReadError(t *testing.T) {
	denied := &fs.PathError{Op: "open", Path: "/proc/100/comm", Err: fs.ErrPermission}
	m := &memFS{errs: map[string]error{"/proc/100/comm": denied}}
	_, err := NewReader(m).CommandName(100)
	require.ErrorIs(t, err, fs.ErrPermission)
}

func TestReader_Chain(t *testing.T) {
	m := &memFS{files: map[string]string{
		"/proc/self/status": "PPid:\t300\n",
		"/proc/300/comm":    "make\n",
		"/proc/300/status":  "PPid:\t200\n",
		"/proc/200/comm":    "zsh\n",
		"/proc/200/status":  "PPid:\t1\n",
	}}

	chain, err := NewReader(m).Chain(32)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{PID: 300, PPID: 200, Name: "make"},
		{PID: 200, PPID: 1, Name: "zsh"},
	}, chain)
}

func TestReader_ChainLimit(t *testing.T) {
	m := &memFS{files: map[string]string{
		"/proc/self/status": "PPid:\t10\n",
		"/proc/10/comm":     "loop\n",
		"/proc/10/status":   "PPid:\t10\n",
	}}

	chain, err := NewReader(m).Chain(4)
	require.NoError(t, err)
	assert.Len(t, chain, 4)
}

func TestReader_ChainReadError(t *testing.T) {
	m := &memFS{files: map[string]string{
		"/proc/self/status": "PPid:\t10\n",
		"/proc/10/comm":     "make\n",
	}}

	chain, err := NewReader(m).Chain(32)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, chain)
}

func TestExecutablePath_OutOfRange(t *testing.T) {
	_, err := ExecutablePath(context.Background(), math.MaxUint32)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestNewReader_DefaultsToOS(t *testing.T) {
	r := NewReader(nil)
	_, ok := r.files.(OSReader)
	assert.True(t, ok)
}
