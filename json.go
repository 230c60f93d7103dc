package peoplegen

import (
	"bytes"
	"encoding/json"
	"io"
)

// writeJSON writes one document holding every record under the
// top-level people key:
//
//	{"people":[{"first_name":"Moe",...},{"first_name":"Larry",...}]}
//
// encoding/json maps have no stable order, so records are assembled by
// hand to keep keys in presentation order.
func writeJSON(w io.Writer, opts WriteOptions, people People) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(jsonString(opts.Headers.peopleKey()))
	buf.WriteString(":[")
	for i, p := range people {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeRecord(&buf, p.Record(i+1, opts))
	}
	buf.WriteString("]}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeRecord(buf *bytes.Buffer, rec []KeyValue) {
	buf.WriteByte('{')
	for i, kv := range rec {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(jsonString(kv.Key))
		buf.WriteByte(':')
		buf.Write(jsonString(kv.Value))
	}
	buf.WriteByte('}')
}

func jsonString(s string) []byte {
	// Marshal of a string cannot fail.
	b, _ := json.Marshal(s)
	return b
}
