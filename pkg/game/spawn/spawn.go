// Package spawn hands a finished level to whatever turns it into visuals
// or entities. The consumer supplies a Palette naming an asset for each
// tile code and object kind, and a Spawner that instantiates them.
package spawn

//go:generate mockgen -destination=mock/mock_spawner.go -package=spawnmock github.com/rigterw/PCG/pkg/game/spawn Spawner

import (
	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/level"
)

// Spawner instantiates assets. Implementations own whatever scene, canvas
// or entity store the assets end up in.
type Spawner interface {
	SpawnTile(asset string, cell world.Point, position level.Position) error
	SpawnObject(asset string, placement level.Placement) error
}

// Palette maps tile codes (by index) and object kinds to asset names
type Palette struct {
	Tiles   []string
	Objects map[level.ObjectKind]string
}

// DefaultPalette names the assets after what they are
func DefaultPalette() Palette {
	p := Palette{
		Tiles:   []string{"wall", "floor"},
		Objects: make(map[level.ObjectKind]string),
	}
	for _, k := range level.AllObjectKinds() {
		p.Objects[k] = k.String()
	}
	return p
}

// ParsePalette builds a palette from object kind names, as found in
// configuration files.
func ParsePalette(tiles []string, objects map[string]string) (Palette, error) {
	p := Palette{
		Tiles:   append([]string(nil), tiles...),
		Objects: make(map[level.ObjectKind]string, len(objects)),
	}
	for name, asset := range objects {
		kind, err := level.ParseObjectKind(name)
		if err != nil {
			return Palette{}, errors.WrapWithCode(err, errors.CodeAssetMapping, "bad palette entry")
		}
		p.Objects[kind] = asset
	}
	return p, nil
}

// TileAsset returns the asset for a tile code
func (p Palette) TileAsset(t world.Tile) (string, error) {
	if int(t) >= len(p.Tiles) || p.Tiles[t] == "" {
		return "", errors.AssetMappingf("no asset for tile code %d", t).
			WithMeta("tile", int(t)).
			WithMeta("palette_size", len(p.Tiles))
	}
	return p.Tiles[t], nil
}

// ObjectAsset returns the asset for an object kind
func (p Palette) ObjectAsset(k level.ObjectKind) (string, error) {
	asset, ok := p.Objects[k]
	if !ok || asset == "" {
		return "", errors.AssetMappingf("no asset for object kind %s", k).
			WithMeta("kind", k.String())
	}
	return asset, nil
}

// Instantiate spawns every tile in row-major order, then every object.
// It stops at the first code the palette cannot map or the first spawner
// error.
func Instantiate(data *level.Data, palette Palette, spawner Spawner) error {
	tileSize := data.TileSize()
	for y, row := range data.Tiles() {
		for x, code := range row {
			cell := world.Point{X: x, Y: y}
			asset, err := palette.TileAsset(world.Tile(code))
			if err != nil {
				return errors.Wrapf(err, "cannot spawn tile at %s", cell)
			}
			if err := spawner.SpawnTile(asset, cell, level.PositionOf(cell, tileSize)); err != nil {
				return errors.Wrapf(err, "failed to spawn tile at %s", cell)
			}
		}
	}

	for _, o := range data.Objects() {
		asset, err := palette.ObjectAsset(o.Kind)
		if err != nil {
			return err
		}
		if err := spawner.SpawnObject(asset, o); err != nil {
			return errors.Wrapf(err, "failed to spawn %s", o.Kind)
		}
	}
	return nil
}
