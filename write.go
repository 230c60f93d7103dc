package peoplegen

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Write renders people to w in the given format and returns the number
// of records written. All formats carry the same per-record fields and
// names for a given opts; only the envelope differs.
func Write(w io.Writer, f Format, opts WriteOptions, people People) (int, error) {
	if opts.Headers == "" {
		opts.Headers = Snake
	}
	if _, ok := fieldNames[opts.Headers]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedHeaderFormat, opts.Headers)
	}

	var err error
	switch f {
	case CSV:
		err = writeCSV(w, opts, people)
	case JSON:
		err = writeJSON(w, opts, people)
	case JSONL:
		err = writeJSONL(w, opts, people)
	case YAML:
		err = writeYAML(w, opts, people)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return 0, err
	}
	return len(people), nil
}

// WriteFile creates or truncates path and writes people to it. Errors
// carry the offending path.
func WriteFile(path string, f Format, opts WriteOptions, people People) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("can't write to %q: %w", path, err)
	}
	n, err := Write(file, f, opts, people)
	if err != nil {
		file.Close()
		return 0, fmt.Errorf("can't write to %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("can't write to %q: %w", path, err)
	}
	return n, nil
}

// Marshal renders people in the given format and returns the bytes.
func Marshal(f Format, opts WriteOptions, people People) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Write(&buf, f, opts, people); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
