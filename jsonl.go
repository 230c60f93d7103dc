package peoplegen

import (
	"bytes"
	"io"
)

// writeJSONL writes one self-contained JSON object per line, with no
// enclosing array, so each line is independently parseable. Well suited
// for ingestion into Spark and for line-based Unix tools.
func writeJSONL(w io.Writer, opts WriteOptions, people People) error {
	var buf bytes.Buffer
	for i, p := range people {
		buf.Reset()
		encodeRecord(&buf, p.Record(i+1, opts))
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
