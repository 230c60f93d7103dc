package peoplegen

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, opts WriteOptions, people People) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(opts.Header()); err != nil {
		return err
	}
	for i, p := range people {
		rec := p.Record(i+1, opts)
		row := make([]string, len(rec))
		for j, kv := range rec {
			row[j] = kv.Value
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
