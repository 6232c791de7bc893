// Package sink delivers generated messages to a target editing surface.
package sink

import (
	"io"
	"os"
	"strings"
	"sync"

	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

// writeFile is a variable to allow mocking in tests.
var writeFile = os.WriteFile

// Surface is an editable text target that accepts a full-content line
// replacement, such as a commit-message file or an in-memory buffer.
type Surface interface {
	ReplaceLines(lines []string) error
}

// Deliver splits the message on newlines and replaces the surface's full
// contents with the resulting line sequence. Multi-line messages are
// delivered verbatim.
func Deliver(surface Surface, message string) error {
	return surface.ReplaceLines(strings.Split(message, "\n"))
}

// Buffer is an in-memory Surface.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// NewBuffer creates an empty in-memory surface.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// ReplaceLines replaces the buffer's contents.
func (b *Buffer) ReplaceLines(lines []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append([]string(nil), lines...)
	return nil
}

// Lines returns a copy of the buffer's current contents.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// String returns the buffer's contents joined with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// File is a Surface backed by a file, typically .git/COMMIT_EDITMSG.
type File struct {
	path string
}

// NewFile creates a file surface at the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file path backing the surface.
func (f *File) Path() string {
	return f.path
}

// ReplaceLines overwrites the file with the given lines and a trailing newline.
func (f *File) ReplaceLines(lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := writeFile(f.path, []byte(content), 0644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileSystem, "failed to write "+f.path)
	}
	return nil
}

// Writer is a Surface that streams each replacement to an io.Writer, such as
// stdout.
type Writer struct {
	w io.Writer
}

// NewWriter creates a writer-backed surface.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// ReplaceLines writes the lines followed by a trailing newline.
func (w *Writer) ReplaceLines(lines []string) error {
	if _, err := io.WriteString(w.w, strings.Join(lines, "\n")+"\n"); err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileSystem, "failed to write message")
	}
	return nil
}
