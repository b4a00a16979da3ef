package qlt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Decoder maps raw tab-separated rows onto Records. Malformed rows are
// skipped and reported through the logger; only an unreadable source is
// fatal.
type Decoder struct {
	schema Schema
	log    *zap.Logger
}

// NewDecoder builds a decoder for the given schema. A nil logger disables
// diagnostics.
func NewDecoder(schema Schema, log *zap.Logger) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decoder{schema: schema, log: log}
}

// Decode walks raw rows in order and returns the accepted records. The
// first Schema.HeaderRows rows are discarded regardless of content; rows
// with fewer than MinFields usable fields (after the index column) are
// skipped and reported with their row number.
func (d *Decoder) Decode(rows [][]string) []Record {
	var recs []Record
	for i, row := range rows {
		if i < d.schema.HeaderRows {
			continue
		}
		if len(row)-1 < d.schema.MinFields {
			d.log.Warn("row skipped: too few columns",
				zap.Int("row", i),
				zap.Int("fields", len(row)-1),
				zap.Int("min", d.schema.MinFields))
			continue
		}
		recs = append(recs, mapRecord(row[1:]))
	}
	return recs
}

// mapRecord assigns usable fields positionally: use, layer, diam, depth,
// x, y, repQty, repX, repY, z, then any remainder appends to Exprs.
func mapRecord(f []string) Record {
	rec := Record{
		Use:    f[0],
		Layer:  f[1],
		Diam:   f[2],
		Depth:  f[3],
		RepQty: f[6],
		RepX:   f[7],
		RepY:   f[8],
		Exprs:  []string{f[4], f[5], f[9]},
	}
	rec.Exprs = append(rec.Exprs, f[10:]...)
	return rec
}

// Read loads raw QLT rows from an open source. The format is tab-separated;
// quotes inside fields are tolerated as-is because the evaluator strips
// them itself. Blank lines are dropped.
func Read(src io.Reader) ([][]string, error) {
	r := csv.NewReader(src)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("qlt source: %w", err)
	}
	return rows, nil
}

// ReadFile loads the raw rows of a QLT file.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("qlt source: %w", err)
	}
	defer f.Close()
	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// DecodeFile is ReadFile followed by Decode.
func (d *Decoder) DecodeFile(path string) ([]Record, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return d.Decode(rows), nil
}
