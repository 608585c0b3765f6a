package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"pfeifer.dev/refmatch/maps"
	"pfeifer.dev/refmatch/params"
	"pfeifer.dev/refmatch/refline"
)

var pathFlag = &cli.StringFlag{
	Category: "Inputs and Outputs",
	Name:     "path",
	Aliases:  []string{"p"},
	Usage:    "The json reference path file to match against",
	Value:    "./path.json",
}

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "match",
				Aliases: []string{"m"},
				Usage:   "Match a position onto a reference path",
				Flags: []cli.Flag{
					pathFlag,
					&cli.Float64Flag{
						Category: "Query",
						Name:     "x",
						Usage:    "The x position of the query in path units",
					},
					&cli.Float64Flag{
						Category: "Query",
						Name:     "y",
						Usage:    "The y position of the query in path units",
					},
					&cli.StringFlag{
						Category: "Query",
						Name:     "strategy",
						Usage:    "Projection strategy, either window or best_segment",
						Value:    string(refline.STRATEGY_WINDOW),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, err := loadPathFile(cmd.String("path"))
					if err != nil {
						return err
					}
					strategy, err := refline.ParseStrategy(cmd.String("strategy"))
					if err != nil {
						return err
					}
					matcher := refline.Matcher{Strategy: strategy}
					point, coord, err := matcher.Match(path, cmd.Float64("x"), cmd.Float64("y"))
					if err != nil {
						return errors.Wrap(err, "could not match position")
					}
					fmt.Println(docStyle.Render(formatMatch(point, coord)))
					return nil
				},
			},
			{
				Name:    "locate",
				Aliases: []string{"l"},
				Usage:   "Find the point at an arc length along a reference path",
				Flags: []cli.Flag{
					pathFlag,
					&cli.Float64Flag{
						Category: "Query",
						Name:     "s",
						Usage:    "The arc length to locate",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, err := loadPathFile(cmd.String("path"))
					if err != nil {
						return err
					}
					point, err := refline.LocateByS(path, cmd.Float64("s"))
					if err != nil {
						return errors.Wrap(err, "could not locate arc length")
					}
					fmt.Println(docStyle.Render(formatPoint(point)))
					return nil
				},
			},
			{
				Name:    "convert",
				Aliases: []string{"c"},
				Usage:   "Convert an open street maps way into a json reference path",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "input-file",
						Aliases:  []string{"i"},
						Usage:    "The open street maps xml or pbf file containing the way",
						Value:    "./map.osm",
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output-file",
						Aliases:  []string{"o"},
						Usage:    "The json file to write the reference path to",
						Value:    "./path.json",
					},
					&cli.StringFlag{
						Category: "Query",
						Name:     "way",
						Usage:    "The id of the way to convert",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					wayID, err := strconv.ParseInt(cmd.String("way"), 10, 64)
					if err != nil {
						return errors.Wrap(err, "could not parse way id")
					}
					return convertWay(ctx, cmd.String("input-file"), cmd.String("output-file"), osm.WayID(wayID))
				},
			},
			{
				Name:  "load",
				Usage: "Store a reference path for the running instance to use",
				Flags: []cli.Flag{pathFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, err := loadPathFile(cmd.String("path"))
					if err != nil {
						return err
					}
					params.EnsureParamDirectories()
					if err := maps.StorePath(path); err != nil {
						return err
					}
					fmt.Println(docStyle.Render(formatPath(path)))
					return nil
				},
			},
			{
				Name:  "unload",
				Usage: "Remove the stored reference path",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return maps.RemoveStoredPath()
				},
			},
			{
				Name:  "params",
				Usage: "List the stored params",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					names, err := params.GetParams()
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Println(params.ParamPath(name))
					}
					return nil
				},
			},
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Repeatedly query a reference path file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Send queries to and watch the output of an active refmatch instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					watch()
					return nil
				},
			},
		},
		Name:  "Refmatch",
		Usage: "Start an instance of refmatch",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}

func loadPathFile(name string) (refline.Path, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "could not open reference path file")
	}
	defer file.Close()
	return maps.LoadJSON(file)
}

func convertWay(ctx context.Context, input string, output string, wayID osm.WayID) error {
	in, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "could not open osm file")
	}
	defer in.Close()

	path, way, err := maps.LoadOSMWay(ctx, in, maps.FormatFromName(input), wayID)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "could not create reference path file")
	}
	defer out.Close()

	if err := maps.SaveJSON(out, path); err != nil {
		return err
	}
	fmt.Println(docStyle.Render(fmt.Sprintf("converted way %d %q\n%s", way.ID, way.Name, formatPath(path))))
	return nil
}
