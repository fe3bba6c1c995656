package level

import (
	"fmt"
	"math"
)

// Tiled map (.tmj) structures, limited to the fields a generated level uses.
// Field names follow the tmj format.

type TiledMap struct {
	CompressionLevel int             `json:"compressionlevel"`
	Infinite         bool            `json:"infinite"`
	Orientation      string          `json:"orientation"`
	RenderOrder      string          `json:"renderorder"`
	TiledVersion     string          `json:"tiledversion"`
	Type             string          `json:"type"`
	Version          string          `json:"version"`
	Width            int             `json:"width"`
	Height           int             `json:"height"`
	TileWidth        int             `json:"tilewidth"`
	TileHeight       int             `json:"tileheight"`
	NextLayerID      int             `json:"nextlayerid"`
	NextObjectID     int64           `json:"nextobjectid"`
	Layers           []any           `json:"layers"`
	Tilesets         []TiledTileset  `json:"tilesets"`
	Properties       []TiledProperty `json:"properties,omitempty"`
}

type TiledTileset struct {
	FirstGID int    `json:"firstgid"`
	Source   string `json:"source"`
}

type TiledTileLayer struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"` // "tilelayer"
	Visible bool    `json:"visible"`
	Opacity float64 `json:"opacity"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Data    []int   `json:"data"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
}

type TiledObject struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Rotation   float64         `json:"rotation"`
	Visible    bool            `json:"visible"`
	Point      bool            `json:"point,omitempty"`
	Properties []TiledProperty `json:"properties,omitempty"`
}

type TiledObjectLayer struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Type      string        `json:"type"` // "objectgroup"
	Visible   bool          `json:"visible"`
	Opacity   float64       `json:"opacity"`
	DrawOrder string        `json:"draworder"`
	Objects   []TiledObject `json:"objects"`
	X         int           `json:"x"`
	Y         int           `json:"y"`
}

type TiledProperty struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// TilesetSource is the external tileset the exported map refers to. Tile
// code c is drawn with gid c+1.
const TilesetSource = "dungeon.tsj"

// ToTiled converts the level into a Tiled map with a "tiles" layer, a
// "rooms" layer of rectangles and an "objects" layer of points.
func (d *Data) ToTiled() *TiledMap {
	tileSize := int(math.Ceil(d.tileSize))
	if tileSize < 1 {
		tileSize = 1
	}

	width, height := d.grid.Width(), d.grid.Height()
	data := make([]int, 0, width*height)
	for _, row := range d.grid.Rows() {
		for _, t := range row {
			data = append(data, int(t)+1)
		}
	}

	var nextID int64 = 1
	rooms := make([]TiledObject, 0, len(d.rooms))
	for id, r := range d.rooms {
		rooms = append(rooms, TiledObject{
			ID:      nextID,
			Name:    fmt.Sprintf("room %d", id),
			Type:    "room",
			X:       float64(r.X0) * d.tileSize,
			Y:       float64(r.Y0) * d.tileSize,
			Width:   float64(r.Width()) * d.tileSize,
			Height:  float64(r.Height()) * d.tileSize,
			Visible: true,
			Properties: []TiledProperty{
				{Name: "room_id", Type: "int", Value: id},
			},
		})
		nextID++
	}

	objects := make([]TiledObject, 0, len(d.objects))
	for _, o := range d.objects {
		objects = append(objects, TiledObject{
			ID:      nextID,
			Name:    o.Kind.String(),
			Type:    o.Kind.String(),
			X:       o.Position.X,
			Y:       o.Position.Y,
			Visible: true,
			Point:   true,
			Properties: []TiledProperty{
				{Name: "room_id", Type: "int", Value: o.Room},
			},
		})
		nextID++
	}

	return &TiledMap{
		Orientation:  "orthogonal",
		RenderOrder:  "right-down",
		TiledVersion: "1.10.2",
		Type:         "map",
		Version:      "1.10",
		Width:        width,
		Height:       height,
		TileWidth:    tileSize,
		TileHeight:   tileSize,
		NextLayerID:  4,
		NextObjectID: nextID,
		Layers: []any{
			TiledTileLayer{
				ID: 1, Name: "tiles", Type: "tilelayer", Visible: true, Opacity: 1,
				Width: width, Height: height, Data: data,
			},
			TiledObjectLayer{
				ID: 2, Name: "rooms", Type: "objectgroup", Visible: true, Opacity: 1,
				DrawOrder: "topdown", Objects: rooms,
			},
			TiledObjectLayer{
				ID: 3, Name: "objects", Type: "objectgroup", Visible: true, Opacity: 1,
				DrawOrder: "topdown", Objects: objects,
			},
		},
		Tilesets: []TiledTileset{{FirstGID: 1, Source: TilesetSource}},
		Properties: []TiledProperty{
			{Name: "seed", Type: "string", Value: fmt.Sprintf("%d", d.seed)},
		},
	}
}
