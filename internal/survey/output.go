package survey

import (
	"fmt"
	"io"
	"os"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// OpenOutput creates or truncates the report file at path. "-" selects
// standard output.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	return f, nil
}
