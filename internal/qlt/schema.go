// Package qlt decodes QLT drill/route programs: tab-separated tables whose
// coordinate fields are arithmetic expressions over symbolic board
// dimensions. The decoder turns raw rows into Records; the evaluator
// resolves each record's expressions into absolute coordinate triples.
package qlt

import "fmt"

// Schema describes the fixed shape of a QLT table. The column tables are
// documentation of the file layout and feed row diagnostics; decoding is
// positional and does not read the in-file header.
type Schema struct {
	// HeaderRows is the number of leading rows discarded unconditionally
	// (title, metadata, schema-name and schema-type rows).
	HeaderRows int
	// MinFields is the minimum number of usable fields per data row after
	// the leading index column is dropped.
	MinFields int
	Keys      []string
	Types     []string
}

// DefaultSchema matches the QLT export format: four header rows, an index
// column, ten mandatory fields, then up to nine extra coordinate groups.
func DefaultSchema() Schema {
	keys := []string{
		"Use", "Layer", "Diam", "Depth", "x", "y", "RepQty", "Repx", "Repy", "z",
	}
	types := []string{
		"Whole Number", "String", "Length", "String", "String", "String",
		"Whole Number", "String", "String", "<none>",
	}
	for i := 2; i <= 10; i++ {
		keys = append(keys,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i), fmt.Sprintf("z%d", i))
		types = append(types, "String", "String", "<none>")
	}
	return Schema{
		HeaderRows: 4,
		MinFields:  10,
		Keys:       keys,
		Types:      types,
	}
}

// HeaderlessSchema is DefaultSchema without the header-skip rule, for rows
// supplied without the file preamble (pasted fragments).
func HeaderlessSchema() Schema {
	s := DefaultSchema()
	s.HeaderRows = 0
	return s
}

// Key returns the column name for a usable field index, or its ordinal for
// columns beyond the documented table.
func (s Schema) Key(i int) string {
	if i >= 0 && i < len(s.Keys) {
		return s.Keys[i]
	}
	return fmt.Sprintf("col%d", i)
}
