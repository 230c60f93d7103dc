package peoplegen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldsOrder(t *testing.T) {
	t.Parallel()
	opts := WriteOptions{IDs: true, SSNs: true, Salaries: true}
	assert.Equal(t, []field{
		fieldID, fieldFirstName, fieldMiddleName, fieldLastName,
		fieldGender, fieldBirthDate, fieldSSN, fieldSalary,
	}, opts.fields())
}

func TestFieldsToggles(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []field{
		fieldFirstName, fieldMiddleName, fieldLastName, fieldGender, fieldBirthDate,
	}, WriteOptions{}.fields())
}

func TestPeopleKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "people", Snake.peopleKey())
	assert.Equal(t, "people", Camel.peopleKey())
	assert.Equal(t, "People", Pretty.peopleKey())
	assert.Equal(t, "people", HeaderFormat("").peopleKey())
}

func TestHeaderFormatNameDefaultsToSnake(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "first_name", HeaderFormat("").name(fieldFirstName))
}

func TestEncodeRecordEscapes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	encodeRecord(&buf, []KeyValue{{Key: "last_name", Value: `O"Brien`}})
	assert.Equal(t, `{"last_name":"O\"Brien"}`, buf.String())
}
