package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"qltview/internal/qlt"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				rows, err := qlt.Read(strings.NewReader(text))
				if err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				recs := m.pasteDec.Decode(rows)
				if len(recs) == 0 {
					m.status = "paste: no decodable rows"
					return m, nil
				}
				m.selPath = ""
				m.setData(recs)
				m.status = "rendered pasted rows  " + m.countsLine()
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showOutline = !m.showOutline
			m.status = fmt.Sprintf("outline: %v", m.showOutline)
		case "2":
			m.showHoles = !m.showHoles
			m.status = fmt.Sprintf("holes: %v", m.showHoles)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			idx, ok := m.inspectNearest()
			if ok {
				h := m.holes[idx]
				rec := m.records[h.rec]
				name := filepath.Base(m.selPath)
				if m.selPath == "" {
					name = "<pasted>"
				}
				meta := []string{
					fmt.Sprintf("program: %s", name),
					fmt.Sprintf("board: %.0fx%.0fx%.0f", m.geometry.Width, m.geometry.Height, m.geometry.Thickness),
					fmt.Sprintf("hole: x=%.3f y=%.3f z=%.3f", h.t.X, h.t.Y, h.t.Z),
					fmt.Sprintf("use=%s layer=%s diam=%s depth=%s", rec.Use, rec.Layer, rec.Diam, rec.Depth),
					fmt.Sprintf("rep: qty=%s x=%s y=%s", rec.RepQty, rec.RepX, rec.RepY),
					m.countsLine(),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no hole nearby"
				m.status = m.inspectPopup
			}
		case "l":
			// toggle both layers
			all := m.showOutline && m.showHoles
			m.showOutline = !all
			m.showHoles = !all
			m.status = fmt.Sprintf("layers: outline=%v holes=%v", m.showOutline, m.showHoles)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over map area
		// compute map origin and size (must match View layout)
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		// Update list size with accurate content height when sidebar visible
		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth + func() int {
			if m.showSidebar {
				return 1
			}
			return 0
		}()
		mapOriginY := headerHeight
		// mouse cell within map?
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			// compute board coordinates for footer
			if x, y, ok := m.cellToBoard(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasPos = true
				m.hoverX = x
				m.hoverY = y
			} else {
				m.hoverHasPos = false
			}
			// snap the highlight to the nearest hole using micro coords
			hxMic := m.hoverCellX * 2
			hyMic := m.hoverCellY * 4
			best := 1<<31 - 1
			bx, by := hxMic, hyMic
			for _, h := range m.holes {
				mx, my, ok := m.screenXYMicro(h.t.X, h.t.Y, mapWidth, mapHeight)
				if !ok {
					continue
				}
				dx := mx - hxMic
				dy := my - hyMic
				d := dx*dx + dy*dy
				if d < best {
					best = d
					bx, by = mx, my
				}
			}
			m.hoverMicX, m.hoverMicY = bx, by
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
