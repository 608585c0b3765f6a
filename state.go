package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"pfeifer.dev/refmatch/cereal"
	"pfeifer.dev/refmatch/maps"
	"pfeifer.dev/refmatch/refline"
	m "pfeifer.dev/refmatch/math"
	ms "pfeifer.dev/refmatch/settings"
	"pfeifer.dev/refmatch/utils"
)

type State struct {
	Path     refline.Path
	Bounds   m.Box
	Tracker  refline.Tracker
	Settings *ms.RefmatchSettings
	Updates  utils.UpdateTracker
}

func NewState(s *ms.RefmatchSettings) *State {
	state := &State{Settings: s}
	state.Updates.Init(20)
	state.applySettings()
	return state
}

func (s *State) applySettings() {
	s.Tracker.Matcher = refline.Matcher{Strategy: s.Settings.Strategy()}
	s.Tracker.SearchRadius = s.Settings.SearchRadius
}

func (s *State) SetPath(path refline.Path) {
	s.Path = path
	s.Bounds = path.Bounds()
	s.Tracker.Reset()
	slog.Info("reference path loaded", "points", len(path), "length", path.Length(), "width", s.Bounds.Width(), "height", s.Bounds.Height())
}

func (s *State) LoadPathFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "could not open reference path file")
	}
	defer file.Close()

	path, err := maps.LoadJSON(file)
	if err != nil {
		return err
	}
	if err := maps.StorePath(path); err != nil {
		utils.Logwe(errors.Wrap(err, "could not persist reference path"))
	}
	s.SetPath(path)
	return nil
}

func (s *State) HandleCommand(cmd cereal.Command) {
	if s.Settings.Handle(cmd) {
		s.applySettings()
		return
	}
	switch cmd.Type {
	case cereal.COMMAND_LOAD_PATH:
		utils.Loge(errors.Wrap(s.LoadPathFile(cmd.Str), "could not load reference path"), "file", cmd.Str)
	case cereal.COMMAND_UNLOAD_PATH:
		utils.Loge(maps.RemoveStoredPath())
		s.SetPath(nil)
	default:
		slog.Warn("unknown command", "type", cmd.Type)
	}
}

func (s *State) HandleRequest(req cereal.MatchRequest) cereal.MatchResponse {
	res := cereal.MatchResponse{
		Id:          req.Id,
		Kind:        req.Kind,
		PathLength:  s.Path.Length(),
		LogMonoTime: cereal.GetTime(),
	}

	var err error
	switch req.Kind {
	case cereal.REQUEST_S:
		res.Point, err = s.Tracker.Matcher.Locate(s.Path, req.S)
		res.Coordinate = refline.Coordinate{S: res.Point.S}
		res.NearestIndex = -1
	case cereal.REQUEST_XY, "":
		res.Kind = cereal.REQUEST_XY
		pos := m.NewVector(req.X, req.Y)
		if !pos.IsFinite() {
			err = errors.Errorf("query position (%f, %f) is not finite", req.X, req.Y)
			break
		}
		res.Point, res.Coordinate, err = s.Tracker.Match(s.Path, req.X, req.Y)
		res.NearestIndex, _ = s.Tracker.LastIndex()
		res.InBounds = s.Bounds.Overlap(ms.BOUNDS_MARGIN).PosInside(pos)
	default:
		err = errors.Errorf("unknown request kind %q", req.Kind)
	}

	if err != nil {
		res.Error = err.Error()
		utils.Logde(errors.Wrap(err, "could not match request"), "id", req.Id)
		return res
	}
	res.Valid = true
	logResponse(res)
	return res
}

func logResponse(res cereal.MatchResponse) {
	slog.Debug("refmatchOut",
		"id", res.Id,
		"kind", res.Kind,
		"x", res.Point.X,
		"y", res.Point.Y,
		"s", res.Coordinate.S,
		"lateral", res.Coordinate.Lateral,
		"side", res.Coordinate.Side,
		"nearestIndex", res.NearestIndex,
		"inBounds", res.InBounds,
	)
}
