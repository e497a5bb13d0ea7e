// Command levelinfo loads levels and prints what the classifier and geometry
// emitter made of them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/automoto/doomgrid/app"
	"github.com/automoto/doomgrid/level"
	"github.com/automoto/doomgrid/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	dir := flag.String("dir", "", "Level directory (empty = bundled levels)")
	name := flag.String("level", "", "Level to inspect (empty = all)")
	configPath := flag.String("config", "", "YAML config overrides")
	flag.Parse()

	ctx := context.Background()
	shutdown := app.Bootstrap(ctx, *configPath)
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Log.WithError(err).Warn("Error shutting down telemetry")
		}
	}()

	fsys, levelsDir := app.LevelSource(*dir)
	session := level.NewSession(fsys, levelsDir)

	names := []string{*name}
	if *name == "" {
		var err error
		names, err = session.Names()
		if err != nil {
			logger.Log.WithError(err).Error("No levels")
			return 1
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tSIZE\tWALLS\tDOORS\tSECRETS\tENEMIES\tPROPS\tPICKUPS\tEXITS\tSEGMENTS\tTRIANGLES")

	failed := false
	for _, n := range names {
		l, err := session.Load(ctx, n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", n, err)
			failed = true
			continue
		}
		s := l.Grid.Stats()
		fmt.Fprintf(tw, "%s\t%dx%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			l.Name, l.Grid.Width, l.Grid.Height,
			s.Walls, s.Doors, s.Secrets, s.Enemies, s.Props, s.Pickups, s.Exits,
			len(l.Segments), l.Mesh.Triangles())
	}
	tw.Flush()

	if failed {
		return 1
	}
	return 0
}
