package level

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTiled(t *testing.T) {
	d := New(sampleParts(t))
	tm := d.ToTiled()

	assert.Equal(t, "map", tm.Type)
	assert.Equal(t, 9, tm.Width)
	assert.Equal(t, 5, tm.Height)
	assert.Equal(t, 5, tm.TileWidth)
	require.Len(t, tm.Layers, 3)

	tiles, ok := tm.Layers[0].(TiledTileLayer)
	require.True(t, ok)
	require.Len(t, tiles.Data, 9*5)
	// row 2 column 4 is the corridor: floor code 1 drawn as gid 2
	assert.Equal(t, 2, tiles.Data[2*9+4])
	assert.Equal(t, 1, tiles.Data[0])

	rooms, ok := tm.Layers[1].(TiledObjectLayer)
	require.True(t, ok)
	require.Len(t, rooms.Objects, 2)
	assert.Equal(t, 25.0, rooms.Objects[1].X)
	assert.Equal(t, 15.0, rooms.Objects[1].Width)

	objects, ok := tm.Layers[2].(TiledObjectLayer)
	require.True(t, ok)
	require.Len(t, objects.Objects, 2)
	assert.Equal(t, "start", objects.Objects[0].Name)
	assert.True(t, objects.Objects[0].Point)
	assert.Equal(t, int64(5), tm.NextObjectID)

	_, err := json.Marshal(tm)
	assert.NoError(t, err)
}
