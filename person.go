package peoplegen

import (
	"strconv"
	"time"
)

// Gender is the binary gender tag carried by generated people. Too
// restrictive, but it matches the gender split in the 2010 Census Bureau
// name data the tool is normally fed.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// String returns the single-character gender code.
func (g Gender) String() string { return string(g) }

const birthDateLayout = "2006-01-02"

// Person is one randomly generated person. First and middle names are
// drawn independently from the same gender-specific list, so a middle
// name can repeat a first name. The SSN is always populated; whether it
// is written out is a WriteOptions concern.
type Person struct {
	FirstName  string
	MiddleName string
	LastName   string
	Gender     Gender
	BirthDate  time.Time
	SSN        string
	Salary     uint32
}

// People is an ordered collection of generated people.
type People []Person

func (p Person) value(f field, id int) string {
	switch f {
	case fieldID:
		return strconv.Itoa(id)
	case fieldFirstName:
		return p.FirstName
	case fieldMiddleName:
		return p.MiddleName
	case fieldLastName:
		return p.LastName
	case fieldGender:
		return string(p.Gender)
	case fieldBirthDate:
		return p.BirthDate.Format(birthDateLayout)
	case fieldSSN:
		return p.SSN
	default:
		return strconv.FormatUint(uint64(p.Salary), 10)
	}
}

// Record projects p into ordered key-value pairs per opts. The id is the
// 1-based position of p in the output and is included only when opts.IDs
// is set. All formats render the same Record, so the per-record content
// is identical across CSV, JSON, JSONL, and YAML output.
func (p Person) Record(id int, opts WriteOptions) []KeyValue {
	fs := opts.fields()
	out := make([]KeyValue, len(fs))
	for i, f := range fs {
		out[i] = KeyValue{Key: opts.Headers.name(f), Value: p.value(f, id)}
	}
	return out
}
