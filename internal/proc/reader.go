// Package proc reads process ancestry from the Linux /proc pseudo-filesystem.
//
// Records are read fresh on every call. Nothing is cached, so a lookup
// reflects the process tree as it was at the moment of the read.
package proc

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// Root is the directory where the pseudo-filesystem is mounted.
	Root = "/proc"

	// Self is the reserved alias resolving to the calling process.
	Self = "self"

	ppidLabel = "PPid:"
)

// FileReader reads the full contents of a file.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads files from the real filesystem.
type OSReader struct{}

// ReadFile implements FileReader.
func (OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// StatusPath returns the status record path for pid.
func StatusPath(pid uint32) string {
	return recordPath(strconv.FormatUint(uint64(pid), 10), "status")
}

// CommPath returns the command-name record path for pid.
func CommPath(pid uint32) string {
	return recordPath(strconv.FormatUint(uint64(pid), 10), "comm")
}

// SelfStatusPath is the status record of the calling process.
var SelfStatusPath = recordPath(Self, "status")

func recordPath(id, record string) string {
	return Root + "/" + id + "/" + record
}

// Reader resolves parent ids and command names through a FileReader.
type Reader struct {
	files FileReader
}

// NewReader creates a Reader. A nil FileReader means the real filesystem.
func NewReader(files FileReader) *Reader {
	if files == nil {
		files = OSReader{}
	}
	return &Reader{files: files}
}

// SelfParentID returns the parent id of the calling process.
func (r *Reader) SelfParentID() (uint32, error) {
	return r.parentID(Self, SelfStatusPath)
}

// ParentID returns the parent id of pid.
func (r *Reader) ParentID(pid uint32) (uint32, error) {
	return r.parentID(strconv.FormatUint(uint64(pid), 10), StatusPath(pid))
}

func (r *Reader) parentID(id, path string) (uint32, error) {
	data, err := r.files.ReadFile(path)
	if err != nil {
		return 0, &RecordError{PID: id, Record: "status", Err: err}
	}
	ppid, err := ParseParentID(data)
	if err != nil {
		return 0, &RecordError{PID: id, Record: "status", Err: err}
	}
	return ppid, nil
}

// CommandName returns the command name of pid with one trailing newline
// removed. The name is not case-folded.
func (r *Reader) CommandName(pid uint32) (string, error) {
	data, err := r.files.ReadFile(CommPath(pid))
	if err != nil {
		return "", &RecordError{PID: strconv.FormatUint(uint64(pid), 10), Record: "comm", Err: err}
	}
	return TrimNewline(string(data)), nil
}

// ParseParentID extracts the PPid field from status text.
func ParseParentID(status []byte) (uint32, error) {
	sc := bufio.NewScanner(bytes.NewReader(status))
	for sc.Scan() {
		rest, ok := strings.CutPrefix(sc.Text(), ppidLabel)
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: PPid value %q", ErrInvalidData, strings.TrimSpace(rest))
		}
		return uint32(v), nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return 0, fmt.Errorf("%w: no PPid line", ErrNotFound)
}

// TrimNewline removes a single trailing line terminator.
func TrimNewline(s string) string {
	if t, ok := strings.CutSuffix(s, "\r\n"); ok {
		return t
	}
	return strings.TrimSuffix(s, "\n")
}
