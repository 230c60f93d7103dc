package peoplegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat       = errors.New("unsupported format")
	ErrUnsupportedHeaderFormat = errors.New("unsupported header format")
	ErrConfig                  = errors.New("invalid configuration")
	ErrSSNSpace                = errors.New("invalid SSN space")
	ErrSSNExhausted            = errors.New("SSN space exhausted")
	ErrNegativeSalary          = errors.New("negative salary")
	ErrEmptyNames              = errors.New("empty name list")
)

// Format represents an output format.
type Format string

const (
	CSV   Format = "csv"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
)

var formats = []Format{CSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// HeaderFormat selects the naming convention used for CSV headers and
// document keys.
type HeaderFormat string

const (
	Snake  HeaderFormat = "snake"  // first_name
	Camel  HeaderFormat = "camel"  // firstName
	Pretty HeaderFormat = "pretty" // First Name
)

var headerFormats = []HeaderFormat{Snake, Camel, Pretty}

// String returns the header format name.
func (h HeaderFormat) String() string { return string(h) }

// HeaderFormats returns all supported header format names.
func HeaderFormats() []HeaderFormat {
	out := make([]HeaderFormat, len(headerFormats))
	copy(out, headerFormats)
	return out
}

// ParseHeaderFormat parses a header format string.
func ParseHeaderFormat(s string) (HeaderFormat, error) {
	for _, h := range headerFormats {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedHeaderFormat, s)
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// WriteOptions controls which fields are written and how they are named.
// The zero value writes snake_case headers with no id, SSN, or salary
// columns.
type WriteOptions struct {
	Headers  HeaderFormat // empty means Snake
	IDs      bool         // emit a sequential 1-based id column
	SSNs     bool         // emit the fake Social Security number
	Salaries bool         // emit the salary
}

// logical record fields, in output order
type field int

const (
	fieldID field = iota
	fieldFirstName
	fieldMiddleName
	fieldLastName
	fieldGender
	fieldBirthDate
	fieldSSN
	fieldSalary
)

var fieldNames = map[HeaderFormat][]string{
	Snake:  {"id", "first_name", "middle_name", "last_name", "gender", "birth_date", "ssn", "salary"},
	Camel:  {"id", "firstName", "middleName", "lastName", "gender", "birthDate", "ssn", "salary"},
	Pretty: {"ID", "First Name", "Middle Name", "Last Name", "Gender", "Birth Date", "SSN", "Salary"},
}

func (h HeaderFormat) name(f field) string {
	if h == "" {
		h = Snake
	}
	return fieldNames[h][f]
}

// peopleKey is the top-level key of the nested-document formats.
func (h HeaderFormat) peopleKey() string {
	if h == Pretty {
		return "People"
	}
	return "people"
}

func (o WriteOptions) fields() []field {
	fs := make([]field, 0, 8)
	if o.IDs {
		fs = append(fs, fieldID)
	}
	fs = append(fs, fieldFirstName, fieldMiddleName, fieldLastName, fieldGender, fieldBirthDate)
	if o.SSNs {
		fs = append(fs, fieldSSN)
	}
	if o.Salaries {
		fs = append(fs, fieldSalary)
	}
	return fs
}

// Header returns the column names selected by o, in output order.
func (o WriteOptions) Header() []string {
	fs := o.fields()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = o.Headers.name(f)
	}
	return out
}
