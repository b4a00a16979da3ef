package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the record table from the decoded program.
func (m *Model) refreshAttrs() {
	if len(m.records) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showAttrs = false
		m.status = "no records in current program"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Use", Width: 5},
		{Title: "Layer", Width: 8},
		{Title: "Diam", Width: 8},
		{Title: "Depth", Width: 9},
		{Title: "RepQty", Width: 7},
		{Title: "Repx", Width: 7},
		{Title: "Repy", Width: 7},
		{Title: "Exprs", Width: 6},
		{Title: "Holes", Width: 6},
	}
	// count holes per record from the resolved set
	perRec := make(map[int]int, len(m.records))
	for _, h := range m.holes {
		perRec[h.rec]++
	}
	rows := make([]table.Row, 0, len(m.records))
	for i, rec := range m.records {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			rec.Use,
			rec.Layer,
			rec.Diam,
			rec.Depth,
			rec.RepQty,
			rec.RepX,
			rec.RepY,
			fmt.Sprintf("%d", len(rec.Exprs)),
			fmt.Sprintf("%d", perRec[i]),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
