package maps

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"pfeifer.dev/refmatch/params"
	"pfeifer.dev/refmatch/refline"
)

// LoadJSON reads a path stored as a json array of path points.
func LoadJSON(r io.Reader) (refline.Path, error) {
	var path refline.Path
	err := json.NewDecoder(r).Decode(&path)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode reference path")
	}
	if err := path.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid reference path")
	}
	return path, nil
}

func SaveJSON(w io.Writer, path refline.Path) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(path), "could not encode reference path")
}

// StorePath persists path as the reference path of a running instance.
func StorePath(path refline.Path) error {
	if err := path.Validate(); err != nil {
		return errors.Wrap(err, "invalid reference path")
	}
	data, err := json.Marshal(path)
	if err != nil {
		return errors.Wrap(err, "could not encode reference path")
	}
	return params.PutParam(params.REFERENCE_PATH, data)
}

var ErrNoStoredPath = errors.New("no reference path stored")

func ReadStoredPath() (refline.Path, error) {
	exists, err := params.Exists(params.ParamPath(params.REFERENCE_PATH))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNoStoredPath
	}
	data, err := params.GetParam(params.REFERENCE_PATH)
	if err != nil {
		return nil, err
	}
	var path refline.Path
	if err := json.Unmarshal(data, &path); err != nil {
		return nil, errors.Wrap(err, "could not decode stored reference path")
	}
	if err := path.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid stored reference path")
	}
	return path, nil
}

func RemoveStoredPath() error {
	return errors.Wrap(params.RemoveParam(params.REFERENCE_PATH), "could not remove stored reference path")
}
