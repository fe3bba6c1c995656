package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/rigterw/PCG/locales"
	"github.com/rigterw/PCG/pkg/engine/terminal"
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/level"
	"github.com/rigterw/PCG/pkg/game/spawn"
)

// glyph is how one asset looks in the preview
type glyph struct {
	symbol rune
	style  color.Style
}

// previewGlyphs covers the assets of spawn.DefaultPalette
var previewGlyphs = map[string]glyph{
	"wall":   {'#', color.Style{color.FgGray}},
	"floor":  {'.', color.Style{color.FgWhite}},
	"start":  {'S', color.Style{color.FgGreen, color.OpBold}},
	"goal":   {'G', color.Style{color.FgMagenta, color.OpBold}},
	"key":    {'k', color.Style{color.FgYellow, color.OpBold}},
	"weapon": {'w', color.Style{color.FgCyan}},
	"enemy":  {'e', color.Style{color.FgRed, color.OpBold}},
}

var unknownGlyph = glyph{'?', color.Style{color.FgRed}}

// Preview is a spawn.Spawner that paints a level onto a text canvas.
// Objects spawned later draw over earlier ones.
type Preview struct {
	width  int
	cells  []glyph
	glyphs map[string]glyph
}

var _ spawn.Spawner = (*Preview)(nil)

// NewPreview creates a blank canvas the size of data
func NewPreview(data *level.Data) *Preview {
	return &Preview{
		width:  data.Width(),
		cells:  make([]glyph, data.Width()*data.Height()),
		glyphs: previewGlyphs,
	}
}

func (p *Preview) paint(asset string, cell world.Point) {
	if cell.X < 0 || cell.X >= p.width || cell.Y < 0 || cell.Y*p.width+cell.X >= len(p.cells) {
		return
	}
	g, ok := p.glyphs[asset]
	if !ok {
		g = unknownGlyph
	}
	p.cells[cell.Y*p.width+cell.X] = g
}

// SpawnTile paints a tile
func (p *Preview) SpawnTile(asset string, cell world.Point, _ level.Position) error {
	p.paint(asset, cell)
	return nil
}

// SpawnObject paints an object over its tile
func (p *Preview) SpawnObject(asset string, placement level.Placement) error {
	p.paint(asset, placement.Cell)
	return nil
}

// Render writes the canvas to w. Colours are used only when w is a
// terminal; when the level is wider than the terminal a note is written
// first.
func (p *Preview) Render(w io.Writer) error {
	colour := terminal.IsTerminal(w)
	if colour && !terminal.Fits(p.width) {
		fmt.Fprintln(w, color.Style{color.FgYellow}.Sprint(
			locales.Getf("LEVEL_TOO_WIDE", p.width, terminal.GetWidth())))
	}

	var line strings.Builder
	for start := 0; start < len(p.cells); start += p.width {
		line.Reset()
		for _, g := range p.cells[start : start+p.width] {
			if g.symbol == 0 {
				line.WriteByte(' ')
				continue
			}
			if colour {
				line.WriteString(g.style.Sprint(string(g.symbol)))
			} else {
				line.WriteRune(g.symbol)
			}
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// RenderPreview instantiates data onto a preview canvas and writes it to w
func RenderPreview(w io.Writer, data *level.Data, palette spawn.Palette) error {
	p := NewPreview(data)
	if err := spawn.Instantiate(data, palette, p); err != nil {
		return err
	}
	return p.Render(w)
}
