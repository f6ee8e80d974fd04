package grid

import (
	"compress/gzip"
	"fmt"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"
)

// ObstacleEntry is the on-disk form of an obstacle. The map itself does not
// know about obstacles, so loading hands these back to the caller.
type ObstacleEntry struct {
	Name         string `nbt:"name"`
	X            int32  `nbt:"x"`
	Y            int32  `nbt:"y"`
	Width        int32  `nbt:"width"`
	Height       int32  `nbt:"height"`
	Impassable   bool   `nbt:"impassable"`
	Trap         bool   `nbt:"trap"`
	Destructible bool   `nbt:"destructible"`
	Hitpoints    int32  `nbt:"hitpoints"`
}

type SpawnEntry struct {
	Name string `nbt:"name"`
	Team string `nbt:"team"`
	X    int32  `nbt:"x"`
	Y    int32  `nbt:"y"`
}

type mapFileData struct {
	Width     int32           `nbt:"width"`
	Height    int32           `nbt:"height"`
	TileSize  int32           `nbt:"tile_size"`
	Water     []byte          `nbt:"water"`
	Ledges    []byte          `nbt:"ledges"`
	Obstacles []ObstacleEntry `nbt:"obstacles"`
	Spawns    []SpawnEntry    `nbt:"spawns"`
}

// SaveToDisk writes the map as a gzipped NBT compound.
func (m *Map) SaveToDisk(filename string, obstacles []ObstacleEntry, spawns []SpawnEntry) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create map file %s", filename)
	}
	defer outfile.Close()

	data := mapFileData{
		Width:     m.width,
		Height:    m.height,
		TileSize:  m.tileSize,
		Water:     make([]byte, len(m.tiles)),
		Ledges:    make([]byte, len(m.tiles)),
		Obstacles: obstacles,
		Spawns:    spawns,
	}
	for index, tile := range m.tiles {
		if tile.Water {
			data.Water[index] = 1
		}
		data.Ledges[index] = tile.LedgeMask
	}

	gzipWriter := gzip.NewWriter(outfile)
	defer gzipWriter.Close()
	println(fmt.Sprintf("[Map] Saving map with dimensions %d x %d to %s", m.width, m.height, filename))
	if err := nbt.NewEncoder(gzipWriter).Encode(data, ""); err != nil {
		return errors.Wrapf(err, "could not encode map file %s", filename)
	}
	return nil
}

// NewMapFromFile loads a gzipped NBT map snapshot.
func NewMapFromFile(filename string) (*Map, []ObstacleEntry, []SpawnEntry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "could not open map file %s", filename)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "map file %s is not gzip compressed", filename)
	}
	defer gzipReader.Close()

	var data mapFileData
	if _, err := nbt.NewDecoder(gzipReader).Decode(&data); err != nil {
		return nil, nil, nil, errors.Wrapf(err, "could not decode map file %s", filename)
	}
	if data.Width <= 0 || data.Height <= 0 || data.TileSize <= 0 {
		return nil, nil, nil, errors.Errorf("map file %s has invalid dimensions %d x %d", filename, data.Width, data.Height)
	}
	println(fmt.Sprintf("[Map] Loading map with dimensions %d x %d", data.Width, data.Height))

	m := NewMap(data.Width, data.Height, data.TileSize)
	tileCount := int(data.Width * data.Height)
	for index := 0; index < tileCount && index < len(data.Water); index++ {
		m.tiles[index].Water = data.Water[index] != 0
	}
	for index := 0; index < tileCount && index < len(data.Ledges); index++ {
		m.tiles[index].LedgeMask = data.Ledges[index]
	}
	return m, data.Obstacles, data.Spawns, nil
}
