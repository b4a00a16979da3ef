package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"qltview/internal/qlt"
)

type fileItem struct {
	title, desc string
	path        string
	isDir       bool
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		p := filepath.Join(m.cwd, name)
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".qlt" || ext == ".tsv" || ext == ".txt" {
			items = append(items, fileItem{title: name, desc: ext, path: p})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no drill programs in current directory"
	}
}

// loadPath decodes a QLT file and resolves its coordinates.
func (m *Model) loadPath(p string) {
	rows, err := qlt.ReadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(m.decoder.Decode(rows))
	m.status = "loaded: " + filepath.Base(p) + "  " + m.countsLine()
	// If attributes are currently shown, rebuild them for the new program
	if m.showAttrs {
		if len(m.records) == 0 {
			m.showAttrs = false
			m.status = "no records in current program"
		} else {
			m.refreshAttrs()
		}
	}
}

// setData evaluates records against the current geometry and resets the
// viewport around the board.
func (m *Model) setData(recs []qlt.Record) {
	m.records = recs
	m.holes = nil
	m.nFailed, m.nEmpty, m.nOrphans = 0, 0, 0
	for i, rec := range recs {
		ts, st := m.eval.TriplesStats(rec, m.geometry)
		for _, t := range ts {
			m.holes = append(m.holes, hole{t: t, rec: i})
		}
		m.nFailed += st.Failed
		m.nEmpty += st.Empty
		m.nOrphans += st.Discarded
	}
	m.outline = m.geometry.Outline()
	m.bb = outlineBBox(m.geometry)
	for _, h := range m.holes {
		if h.t.X < m.bb.MinX {
			m.bb.MinX = h.t.X
		}
		if h.t.Y < m.bb.MinY {
			m.bb.MinY = h.t.Y
		}
		if h.t.X > m.bb.MaxX {
			m.bb.MaxX = h.t.X
		}
		if h.t.Y > m.bb.MaxY {
			m.bb.MaxY = h.t.Y
		}
	}
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.showOutline = true
	m.showHoles = true
}

func (m Model) countsLine() string {
	s := fmt.Sprintf("records=%d holes=%d", len(m.records), len(m.holes))
	if m.nFailed > 0 {
		s += fmt.Sprintf(" failed=%d", m.nFailed)
	}
	if m.nOrphans > 0 {
		s += fmt.Sprintf(" orphans=%d", m.nOrphans)
	}
	return s
}
