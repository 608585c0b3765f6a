package maps

import (
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"

	m "pfeifer.dev/refmatch/math"
	"pfeifer.dev/refmatch/refline"
)

type OSMFormat int

const (
	FORMAT_XML OSMFormat = iota
	FORMAT_PBF
)

func FormatFromName(name string) OSMFormat {
	if strings.HasSuffix(name, ".pbf") {
		return FORMAT_PBF
	}
	return FORMAT_XML
}

type OSMWay struct {
	ID    osm.WayID
	Name  string
	Nodes []m.Position
}

// LoadOSMWay reads one way from an osm extract and converts it into a
// planar reference path in metres around the first node of the way.
func LoadOSMWay(ctx context.Context, r io.Reader, format OSMFormat, wayID osm.WayID) (refline.Path, OSMWay, error) {
	var scanner osm.Scanner
	if format == FORMAT_PBF {
		pbf := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
		pbf.SkipRelations = true
		scanner = pbf
	} else {
		scanner = osmxml.New(ctx, r)
	}
	defer scanner.Close()

	way, err := scanWay(scanner, wayID)
	if err != nil {
		return nil, way, err
	}
	path := WayPath(way)
	if err := path.Validate(); err != nil {
		return nil, way, errors.Wrapf(err, "way %d does not form a reference path", wayID)
	}
	return path, way, nil
}

// scanWay keeps every node location since nodes precede ways in an osm
// extract and the way is only known once it is reached.
func scanWay(scanner osm.Scanner, wayID osm.WayID) (OSMWay, error) {
	res := OSMWay{ID: wayID}
	nodes := map[osm.NodeID]m.Position{}
	var found *osm.Way

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = m.NewPosition(o.Lat, o.Lon)
		case *osm.Way:
			if o.ID == wayID {
				found = o
			}
		}
		if found != nil {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return res, errors.Wrap(err, "could not scan osm data")
	}
	if found == nil {
		return res, errors.Errorf("could not find way %d", wayID)
	}

	res.Name = found.Tags.Find("name")
	res.Nodes = make([]m.Position, 0, len(found.Nodes))
	for _, wn := range found.Nodes {
		if wn.Lat != 0 || wn.Lon != 0 {
			res.Nodes = append(res.Nodes, m.NewPosition(wn.Lat, wn.Lon))
			continue
		}
		pos, ok := nodes[wn.ID]
		if !ok {
			return res, errors.Errorf("way %d references missing node %d", wayID, wn.ID)
		}
		res.Nodes = append(res.Nodes, pos)
	}
	if len(res.Nodes) == 0 {
		return res, errors.Errorf("way %d has no nodes", wayID)
	}
	return res, nil
}

// WayPath projects the way onto a plane tangent at its first node.
func WayPath(way OSMWay) refline.Path {
	if len(way.Nodes) == 0 {
		return refline.Path{}
	}
	origin := way.Nodes[0]
	points := make([]m.Vector, len(way.Nodes))
	for i, node := range way.Nodes {
		points[i] = node.ToLocal(origin)
	}
	return refline.FromPoints(points)
}
