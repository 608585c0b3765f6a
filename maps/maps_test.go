package maps

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pfeifer.dev/refmatch/math"
	"pfeifer.dev/refmatch/params"
	"pfeifer.dev/refmatch/refline"
)

const testOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="39.0" lon="-83.0"/>
  <node id="2" lat="39.0" lon="-82.999"/>
  <node id="3" lat="39.001" lon="-82.999"/>
  <node id="4" lat="39.002" lon="-82.999"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
    <tag k="name" v="Main Street"/>
  </way>
  <way id="11">
    <nd ref="3"/>
    <nd ref="99"/>
  </way>
</osm>`

func TestLoadOSMWay(t *testing.T) {
	path, way, err := LoadOSMWay(context.Background(), strings.NewReader(testOSM), FORMAT_XML, 10)
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, "Main Street", way.Name)

	assert.Equal(t, 0.0, path[0].X)
	assert.Equal(t, 0.0, path[0].Y)
	assert.Greater(t, path[1].X, 0.0)
	assert.InDelta(t, 0, path[1].Y, 1e-9)
	assert.Greater(t, path[2].Y, 0.0)

	// 0.001 degrees east then 0.001 degrees north at latitude 39
	assert.InDelta(t, 197.7, path.Length(), 1)

	// a query on the second leg is matched against the way
	coord, err := refline.ToPathCoordinates(path, path[1].X+1, path[2].Y*0.75)
	require.NoError(t, err)
	assert.InDelta(t, 1, coord.Lateral, 0.05)
}

func TestLoadOSMWayErrors(t *testing.T) {
	_, _, err := LoadOSMWay(context.Background(), strings.NewReader(testOSM), FORMAT_XML, 12)
	assert.ErrorContains(t, err, "could not find way 12")

	_, _, err = LoadOSMWay(context.Background(), strings.NewReader(testOSM), FORMAT_XML, 11)
	assert.ErrorContains(t, err, "missing node 99")
}

func TestFormatFromName(t *testing.T) {
	assert.Equal(t, FORMAT_PBF, FormatFromName("ohio.osm.pbf"))
	assert.Equal(t, FORMAT_XML, FormatFromName("way.osm"))
}

func TestJSONRoundTrip(t *testing.T) {
	path := refline.FromPoints([]m.Vector{m.NewVector(0, 0), m.NewVector(3, 4), m.NewVector(6, 8)})

	buf := bytes.Buffer{}
	require.NoError(t, SaveJSON(&buf, path))

	loaded, err := LoadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, path, loaded)
}

func TestLoadJSONRejectsInvalidPaths(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, refline.ErrEmptyPath)

	_, err = LoadJSON(strings.NewReader(`[{"x":0,"y":0,"s":1},{"x":1,"y":0,"s":0}]`))
	assert.ErrorIs(t, err, refline.ErrNonMonotonic)

	_, err = LoadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestStoredPath(t *testing.T) {
	old := params.ParamsPath
	params.ParamsPath = filepath.Join(t.TempDir(), "d")
	t.Cleanup(func() { params.ParamsPath = old })
	params.EnsureParamDirectories()

	_, err := ReadStoredPath()
	assert.ErrorIs(t, err, ErrNoStoredPath)

	path := refline.Path{{X: 0, Y: 0, S: 0}, {X: 1, Y: 0, S: 1}}
	require.NoError(t, StorePath(path))
	stored, err := ReadStoredPath()
	require.NoError(t, err)
	assert.Equal(t, path, stored)

	assert.Error(t, StorePath(refline.Path{}))

	require.NoError(t, RemoveStoredPath())
	_, err = ReadStoredPath()
	assert.ErrorIs(t, err, ErrNoStoredPath)
	require.NoError(t, RemoveStoredPath())
}
