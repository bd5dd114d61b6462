package transcript

import (
	"fmt"
	"os"

	"tgbackup/internal/domain"
)

// Writer appends transcript lines to a single UTF-8 text file. The file is
// opened in append mode: a rerun over the same chat appends duplicates unless
// the caller clears prior output first.
type Writer struct {
	f *os.File
}

func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open transcript %s: %w", path, err)
	}
	return &Writer{f: f}, nil
}

// WriteMessage appends exactly one line for msg.
func (w *Writer) WriteMessage(msg *domain.Message) error {
	if _, err := w.f.WriteString(FormatLine(msg) + "\n"); err != nil {
		return fmt.Errorf("write transcript line: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.f.Close()
}
