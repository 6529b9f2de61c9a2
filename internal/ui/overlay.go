package ui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Overlay composites box centered on top of base. The cells of base that
// remain visible are dimmed so the box reads as the foreground.
func Overlay(base, box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Fg = ColorTextMuted
			scr.SetCell(x, y, cell)
		}
	}

	boxW := min(lipgloss.Width(box), width)
	boxH := min(lipgloss.Height(box), height)
	x := (width - boxW) / 2
	y := (height - boxH) / 2
	uv.NewStyledString(box).Draw(scr, uv.Rect(x, y, boxW, boxH))

	return scr.Render()
}
