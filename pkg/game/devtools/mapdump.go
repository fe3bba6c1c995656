// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rigterw/PCG/locales"
	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/level"
	"github.com/rigterw/PCG/pkg/game/seedcode"
)

const mapDumpFilename = "level.txt"

// objectGlyphs are the map symbols for each object kind
var objectGlyphs = map[level.ObjectKind]rune{
	level.ObjectStart:  'S',
	level.ObjectGoal:   'G',
	level.ObjectKey:    'k',
	level.ObjectWeapon: 'w',
	level.ObjectEnemy:  'e',
}

// ObjectName returns the translated display name of an object kind
func ObjectName(k level.ObjectKind) string {
	return locales.Get("OBJECT_" + strings.ToUpper(k.String()))
}

// tileSymbol returns the symbol for a tile with no object on it
func tileSymbol(t world.Tile) rune {
	if t.IsWalkable() {
		return '.'
	}
	return '#'
}

// writeMapGrid writes the level as text, objects drawn over their tiles.
// Goal is drawn over Start when they share a tile.
func writeMapGrid(w io.Writer, data *level.Data) {
	overlay := make(map[world.Point]rune)
	for _, o := range data.Objects() {
		overlay[o.Cell] = objectGlyphs[o.Kind]
	}

	var line strings.Builder
	for y := 0; y < data.Height(); y++ {
		line.Reset()
		for x := 0; x < data.Width(); x++ {
			p := world.Point{X: x, Y: y}
			if r, ok := overlay[p]; ok {
				line.WriteRune(r)
				continue
			}
			line.WriteRune(tileSymbol(data.Tile(p)))
		}
		fmt.Fprintln(w, line.String())
	}
}

// DumpLevel writes a full debug dump: metadata, legend, map, rooms,
// corridors, connection order and objects. Sections use "key: value" lines
// so the output is easy to diff and grep.
func DumpLevel(w io.Writer, data *level.Data) error {
	if data == nil {
		return errors.InvalidArgumentf("no level to dump")
	}

	rooms := data.Rooms()
	corridors := data.Corridors()
	objects := data.Objects()

	fmt.Fprintln(w, "=== LEVEL DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", data.Seed())
	fmt.Fprintf(w, "seed_code: %s\n", seedcode.Encode(data.Seed()))
	fmt.Fprintf(w, "width: %d\n", data.Width())
	fmt.Fprintf(w, "height: %d\n", data.Height())
	fmt.Fprintf(w, "tile_size: %g\n", data.TileSize())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row, north=up)\n")
	fmt.Fprintf(w, "rooms: %d\n", len(rooms))
	fmt.Fprintf(w, "corridors: %d\n", len(corridors))
	fmt.Fprintf(w, "objects: %d\n", len(objects))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  . = floor  S = start  G = goal  k = key  w = weapon  e = enemy")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, data)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms (id: x0,y0-x1,y1 size) ---")
	for id, r := range rooms {
		fmt.Fprintf(w, "room_%d: %d,%d-%d,%d %s\n", id, r.X0, r.Y0, r.X1, r.Y1, r.Size())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Corridors (from->to: segments) ---")
	for _, c := range corridors {
		segs := make([]string, len(c.Segments))
		for i, s := range c.Segments {
			segs[i] = s.String()
		}
		fmt.Fprintf(w, "corridor_%d_%d: %s\n", c.From, c.To, strings.Join(segs, " "))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Connection order ---")
	order := data.ConnectionOrder()
	ids := make([]string, len(order))
	for i, id := range order {
		ids[i] = fmt.Sprintf("%d", id)
	}
	fmt.Fprintf(w, "order: %s\n", strings.Join(ids, " "))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Objects (kind: x,y room position) ---")
	for _, o := range objects {
		fmt.Fprintf(w, "%s: %s room_%d %g,%g\n", ObjectName(o.Kind), o.Cell, o.Room, o.Position.X, o.Position.Y)
	}

	return nil
}

// DumpLevelToFile writes DumpLevel output to path, or to level.txt in the
// working directory when path is empty. It returns the absolute path written.
func DumpLevelToFile(data *level.Data, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve dump path")
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to create dump file")
	}
	defer f.Close()

	if err := DumpLevel(f, data); err != nil {
		return "", err
	}
	return absPath, nil
}
