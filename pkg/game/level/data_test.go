package level

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigterw/PCG/pkg/engine/world"
)

func sampleParts(t *testing.T) Parts {
	t.Helper()
	grid, err := world.NewTileGrid(9, 5)
	require.NoError(t, err)

	rooms := []world.Rect{
		{X0: 1, Y0: 1, X1: 3, Y1: 3},
		{X0: 5, Y0: 1, X1: 7, Y1: 3},
	}
	for _, r := range rooms {
		require.NoError(t, grid.Carve(r, world.TileFloor))
	}
	corridor := world.Rect{X0: 4, Y0: 2, X1: 4, Y1: 2}
	require.NoError(t, grid.Carve(corridor, world.TileFloor))

	return Parts{
		Grid:            grid,
		TileSize:        5,
		Seed:            99,
		Rooms:           rooms,
		Corridors:       []Corridor{{From: 0, To: 1, Segments: []world.Rect{corridor}}},
		ConnectionOrder: []int{0, 1},
		Objects: []Placement{
			{Kind: ObjectStart, Cell: world.Point{X: 2, Y: 2}, Position: Position{X: 10, Y: 10}, Room: 0},
			{Kind: ObjectGoal, Cell: world.Point{X: 6, Y: 2}, Position: Position{X: 30, Y: 10}, Room: 1},
		},
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	parts := sampleParts(t)
	d := New(parts)

	require.NoError(t, parts.Grid.Carve(world.Rect{X0: 1, Y0: 4, X1: 1, Y1: 4}, world.TileFloor))
	parts.Rooms[0].X0 = 0
	parts.Corridors[0].Segments[0].X0 = 0
	parts.Objects[0].Kind = ObjectEnemy

	assert.Equal(t, world.TileWall, d.Tile(world.Point{X: 1, Y: 4}))
	assert.Equal(t, 1, d.Rooms()[0].X0)
	assert.Equal(t, 4, d.Corridors()[0].Segments[0].X0)
	assert.Equal(t, ObjectStart, d.Objects()[0].Kind)
}

func TestGetters_ReturnCopies(t *testing.T) {
	d := New(sampleParts(t))

	d.Rooms()[0].X0 = 0
	d.Objects()[0].Room = 7
	d.ConnectionOrder()[0] = 5
	d.Corridors()[0].Segments[0].Y0 = 0
	d.Tiles()[2][2] = 0

	assert.Equal(t, 1, d.Rooms()[0].X0)
	assert.Equal(t, 0, d.Objects()[0].Room)
	assert.Equal(t, []int{0, 1}, d.ConnectionOrder())
	assert.Equal(t, 2, d.Corridors()[0].Segments[0].Y0)
	assert.Equal(t, uint8(world.TileFloor), d.Tiles()[2][2])
}

func TestData_Accessors(t *testing.T) {
	d := New(sampleParts(t))

	assert.Equal(t, 9, d.Width())
	assert.Equal(t, 5, d.Height())
	assert.Equal(t, 5.0, d.TileSize())
	assert.Equal(t, int64(99), d.Seed())
	assert.Len(t, d.ObjectsOf(ObjectGoal), 1)
	assert.Empty(t, d.ObjectsOf(ObjectKey))
	assert.Equal(t, 1, d.RoomAt(world.Point{X: 6, Y: 3}))
	assert.Equal(t, -1, d.RoomAt(world.Point{X: 4, Y: 2}), "corridor tiles belong to no room")
}

func TestData_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(New(sampleParts(t)))
	require.NoError(t, err)

	var decoded struct {
		Width    int     `json:"width"`
		Height   int     `json:"height"`
		TileSize float64 `json:"tile_size"`
		Seed     int64   `json:"seed"`
		Tiles    [][]int `json:"tiles"`
		Objects  []struct {
			Kind string `json:"kind"`
		} `json:"objects"`
		ConnectionOrder []int `json:"connection_order"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, 9, decoded.Width)
	assert.Equal(t, int64(99), decoded.Seed)
	require.Len(t, decoded.Tiles, 5)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 1, 1, 1, 0}, decoded.Tiles[2])
	require.Len(t, decoded.Objects, 2)
	assert.Equal(t, "start", decoded.Objects[0].Kind)
	assert.Equal(t, "goal", decoded.Objects[1].Kind)
	assert.Equal(t, []int{0, 1}, decoded.ConnectionOrder)
}

func TestObjectKind_Names(t *testing.T) {
	for _, k := range AllObjectKinds() {
		parsed, err := ParseObjectKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseObjectKind("dragon")
	assert.Error(t, err)
	assert.Equal(t, "unknown", ObjectKind(42).String())

	_, err = ObjectKind(42).MarshalText()
	assert.Error(t, err)
}

func TestObjectKind_AsMapKey(t *testing.T) {
	raw := []byte(`{"key":"brass_key","enemy":"skeleton"}`)
	var m map[ObjectKind]string
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "brass_key", m[ObjectKey])
	assert.Equal(t, "skeleton", m[ObjectEnemy])
}

func TestPositionOf(t *testing.T) {
	assert.Equal(t, Position{X: 15, Y: 2.5}, PositionOf(world.Point{X: 6, Y: 1}, 2.5))
}
