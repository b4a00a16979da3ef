package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qltview/internal/board"
	"qltview/internal/qlt"
)

// bbox is the plotting extent: the board outline, widened when a program
// declares holes outside the board.
type bbox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// hole is one resolved feature instance with a back-reference to its record.
type hole struct {
	t   qlt.Triple
	rec int
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Decoding pipeline
	geometry board.Geometry
	decoder  *qlt.Decoder
	pasteDec *qlt.Decoder // headerless, for pasted fragments
	eval     *qlt.Evaluator

	// Data
	records []qlt.Record
	holes   []hole
	outline [][2]float64
	bb      bbox

	// aggregate counters for the current file
	nFailed  int
	nEmpty   int
	nOrphans int // trailing values that never completed a triple

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showOutline bool
	showHoles   bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverX      float64
	hoverY      float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(g board.Geometry, log *zap.Logger) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "qltview ready",
		geometry:    g,
		decoder:     qlt.NewDecoder(qlt.DefaultSchema(), log),
		pasteDec:    qlt.NewDecoder(qlt.HeaderlessSchema(), log),
		eval:        qlt.NewEvaluator(log),
		showOutline: true,
		showHoles:   true,
	}
	m.outline = g.Outline()
	m.bb = outlineBBox(g)
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Programs"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste tab-separated QLT rows (no header). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns are fixed by the QLT record shape)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a program at launch.
func NewWithPath(path string, g board.Geometry, log *zap.Logger) Model {
	m := New(g, log)
	m.loadPath(path)
	return m
}

func outlineBBox(g board.Geometry) bbox {
	return bbox{MinX: 0, MinY: 0, MaxX: g.Width, MaxY: g.Height}
}

func (m Model) Init() tea.Cmd { return nil }
