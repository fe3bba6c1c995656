package spawn

import (
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/level"
)

// Entry is one recorded spawn
type Entry struct {
	Asset    string         `json:"asset"`
	Cell     world.Point    `json:"cell"`
	Position level.Position `json:"position"`
	Kind     string         `json:"kind,omitempty"`
	Room     *int           `json:"room,omitempty"`
}

// Manifest lists every asset instance of a level
type Manifest struct {
	Seed    int64   `json:"seed"`
	Tiles   []Entry `json:"tiles"`
	Objects []Entry `json:"objects"`
}

// Recorder is a Spawner that writes what it is asked to spawn into a
// Manifest, for engines that load levels from data files.
type Recorder struct {
	Manifest Manifest
}

// SpawnTile records a tile
func (r *Recorder) SpawnTile(asset string, cell world.Point, position level.Position) error {
	r.Manifest.Tiles = append(r.Manifest.Tiles, Entry{Asset: asset, Cell: cell, Position: position})
	return nil
}

// SpawnObject records an object
func (r *Recorder) SpawnObject(asset string, placement level.Placement) error {
	room := placement.Room
	r.Manifest.Objects = append(r.Manifest.Objects, Entry{
		Asset:    asset,
		Cell:     placement.Cell,
		Position: placement.Position,
		Kind:     placement.Kind.String(),
		Room:     &room,
	})
	return nil
}

// BuildManifest instantiates data into a fresh Manifest
func BuildManifest(data *level.Data, palette Palette) (*Manifest, error) {
	r := &Recorder{Manifest: Manifest{Seed: data.Seed()}}
	if err := Instantiate(data, palette, r); err != nil {
		return nil, err
	}
	return &r.Manifest, nil
}
