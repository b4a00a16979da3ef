package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellToBoard converts a map cell coordinate back to board x/y using the
// plot extent, zoom, and pan.
func (m Model) cellToBoard(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bb.MaxX > m.bb.MinX && m.bb.MaxY > m.bb.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bb.MinX + nx*(m.bb.MaxX-m.bb.MinX)
	y := m.bb.MinY + ny*(m.bb.MaxY-m.bb.MinY)
	return x, y, true
}

func (m Model) renderBoard(w, h int) string {
	// Plain background
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			row[x] = ' '
		}
		lines[y] = string(row)
	}
	// High-resolution braille buffer for crisp edges and holes
	br := newBrailleBuf(w, h)

	// Board outline as a closed ring
	if m.showOutline && len(m.outline) >= 2 {
		var ring [][2]int
		for _, p := range m.outline {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			ring = append(ring, [2]int{mx, my})
		}
		br.drawPolyline(ring)
	}

	// Holes as single points
	if m.showHoles && len(m.holes) > 0 && m.bb.MaxX > m.bb.MinX && m.bb.MaxY > m.bb.MinY {
		for _, hl := range m.holes {
			mx, my, ok := m.screenXYMicro(hl.t.X, hl.t.Y, w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Hover highlight: draw an orange circle at the snapped hole cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
				pre := string(r[:cx])
				post := string(r[cx+1:])
				lines[cy] = pre + circle + post
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps board x/y into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !(m.bb.MaxX > m.bb.MinX && m.bb.MaxY > m.bb.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bb.MinX) / (m.bb.MaxX - m.bb.MinX)
	ny := (y - m.bb.MinY) / (m.bb.MaxY - m.bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps board x/y to screen cell coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	if !(m.bb.MaxX > m.bb.MinX && m.bb.MaxY > m.bb.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bb.MinX) / (m.bb.MaxX - m.bb.MinX)
	ny := (y - m.bb.MinY) / (m.bb.MaxY - m.bb.MinY)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// inspectNearest finds the hole closest to the viewport center.
func (m Model) inspectNearest() (int, bool) {
	if len(m.holes) == 0 {
		return 0, false
	}
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	best := -1
	for i, hl := range m.holes {
		sx, sy, ok := m.screenXY(hl.t.X, hl.t.Y, w, h)
		if !ok {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
