package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RenderOption customizes Render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	invaded    byte
	open       byte
	withValues bool
}

func defaultRenderConfig() renderConfig {
	return renderConfig{invaded: '#', open: '.'}
}

// WithGlyphs sets the characters used for invaded and open cells.
// Panics on non-printable ASCII to keep rows aligned.
func WithGlyphs(invaded, open byte) RenderOption {
	if invaded < ' ' || invaded > '~' || open < ' ' || open > '~' {
		panic("grid: WithGlyphs requires printable ASCII")
	}
	return func(c *renderConfig) {
		c.invaded, c.open = invaded, open
	}
}

// WithValues prints resistances instead of glyphs. Each value is
// right-aligned to the width of the spread and suffixed by '*' when invaded.
func WithValues() RenderOption {
	return func(c *renderConfig) {
		c.withValues = true
	}
}

// Render writes one line per row to w.
func (g *Grid) Render(w io.Writer, opts ...RenderOption) error {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	width := len(strconv.Itoa(g.spread))
	var line strings.Builder
	for r := 0; r < g.size; r++ {
		line.Reset()
		for c := 0; c < g.size; c++ {
			i := r*g.size + c
			if !cfg.withValues {
				if g.invaded[i] {
					line.WriteByte(cfg.invaded)
				} else {
					line.WriteByte(cfg.open)
				}
				continue
			}
			if c > 0 {
				line.WriteByte(' ')
			}
			fmt.Fprintf(&line, "%*d", width, g.values[i])
			if g.invaded[i] {
				line.WriteByte('*')
			} else {
				line.WriteByte(' ')
			}
		}
		if _, err := bw.WriteString(strings.TrimRight(line.String(), " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the grid with the default glyphs.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Render(&sb)
	return sb.String()
}
