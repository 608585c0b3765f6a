package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/refmatch/cereal"
	"pfeifer.dev/refmatch/maps"
	"pfeifer.dev/refmatch/params"
	"pfeifer.dev/refmatch/refline"
	ms "pfeifer.dev/refmatch/settings"
)

func testState(t *testing.T) *State {
	t.Helper()
	old := params.ParamsPath
	params.ParamsPath = filepath.Join(t.TempDir(), "d")
	t.Cleanup(func() { params.ParamsPath = old })
	params.EnsureParamDirectories()

	s := &ms.RefmatchSettings{}
	s.Default()
	return NewState(s)
}

func TestHandleRequestEmptyPath(t *testing.T) {
	state := testState(t)

	res := state.HandleRequest(cereal.MatchRequest{Id: 1, Kind: cereal.REQUEST_XY, X: 1, Y: 1})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, "empty reference path")
	assert.Equal(t, uint64(1), res.Id)

	res = state.HandleRequest(cereal.MatchRequest{Id: 2, Kind: cereal.REQUEST_S, S: 1})
	assert.False(t, res.Valid)
}

func TestHandleRequest(t *testing.T) {
	state := testState(t)
	state.SetPath(refline.Path{
		{X: 0, Y: 0, S: 0},
		{X: 10, Y: 0, S: 10},
		{X: 20, Y: 0, S: 20},
	})

	res := state.HandleRequest(cereal.MatchRequest{Id: 3, X: 9, Y: 1})
	require.True(t, res.Valid, res.Error)
	assert.Equal(t, cereal.REQUEST_XY, res.Kind)
	assert.InDelta(t, 9, res.Coordinate.S, 1e-9)
	assert.InDelta(t, 1, res.Coordinate.Lateral, 1e-9)
	assert.Equal(t, 1, res.NearestIndex)
	assert.Equal(t, 20.0, res.PathLength)
	assert.True(t, res.InBounds)

	res = state.HandleRequest(cereal.MatchRequest{Id: 6, X: 200, Y: 0})
	require.True(t, res.Valid, res.Error)
	assert.False(t, res.InBounds)
	assert.InDelta(t, 200, res.Coordinate.S, 1e-9)

	res = state.HandleRequest(cereal.MatchRequest{Id: 7, X: math.NaN(), Y: 0})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, "not finite")

	res = state.HandleRequest(cereal.MatchRequest{Id: 4, Kind: cereal.REQUEST_S, S: 25})
	require.True(t, res.Valid, res.Error)
	assert.Equal(t, 20.0, res.Point.X)

	res = state.HandleRequest(cereal.MatchRequest{Id: 5, Kind: "polar"})
	assert.False(t, res.Valid)
}

func TestHandleCommand(t *testing.T) {
	state := testState(t)

	state.HandleCommand(cereal.Command{Type: cereal.COMMAND_SET_STRATEGY, Str: "best_segment"})
	assert.Equal(t, refline.STRATEGY_BEST_SEGMENT, state.Tracker.Matcher.Strategy)

	state.HandleCommand(cereal.Command{Type: cereal.COMMAND_SET_SEARCH_RADIUS, Int: 2})
	assert.Equal(t, 2, state.Tracker.SearchRadius)

	file := filepath.Join(t.TempDir(), "path.json")
	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, maps.SaveJSON(f, refline.Path{{X: 0, Y: 0, S: 0}, {X: 0, Y: 5, S: 5}}))
	require.NoError(t, f.Close())

	state.HandleCommand(cereal.Command{Type: cereal.COMMAND_LOAD_PATH, Str: file})
	require.Len(t, state.Path, 2)

	stored, err := maps.ReadStoredPath()
	require.NoError(t, err)
	assert.Equal(t, state.Path, stored)

	// a bad file keeps the current path
	state.HandleCommand(cereal.Command{Type: cereal.COMMAND_LOAD_PATH, Str: filepath.Join(t.TempDir(), "missing.json")})
	assert.Len(t, state.Path, 2)

	state.HandleCommand(cereal.Command{Type: cereal.COMMAND_UNLOAD_PATH})
	assert.Empty(t, state.Path)
	_, err = maps.ReadStoredPath()
	assert.ErrorIs(t, err, maps.ErrNoStoredPath)
}
