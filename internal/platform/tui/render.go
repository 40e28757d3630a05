package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruitbox/internal/core"
)

// cellStyle is the colour pair of a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// maxStyles bounds the style cache. Fading effects produce a new colour
// pair almost every frame, so the cache starts over when it fills up.
const maxStyles = 2048

// Painter converts screen buffers to styled strings. It caches one
// lipgloss style per colour pair; lipgloss degrades hex colours to what
// the renderer's terminal supports.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewPainter creates a painter for the given renderer. Nil uses the
// default renderer on stdout.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (p *Painter) style(cs cellStyle) lipgloss.Style {
	if st, ok := p.styles[cs]; ok {
		return st
	}
	if len(p.styles) >= maxStyles {
		clear(p.styles)
	}
	st := p.renderer.NewStyle()
	if cs.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(cs.bg))
	}
	p.styles[cs] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != start.fg || cell.Bg != start.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
