// Command hexwalk runs the hexgrid search algorithms over a scenario and
// renders the results as ASCII maps: one for the two paths, one for
// reachability and fog of war.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/danneu/hexgrid/grid"
	"github.com/danneu/hexgrid/hex"
	"github.com/danneu/hexgrid/internal/scenario"
	"github.com/danneu/hexgrid/path"
)

// wallCost marks noise cells above the impassable threshold. Dijkstra has
// no structural obstacles, so walls are just prohibitively expensive.
const wallCost = 1e9

func main() {
	log.Println("Starting hexwalk demo...")

	scenarioPath := flag.String("scenario", os.Getenv("HEXWALK_SCENARIO"), "path to a scenario YAML file")
	flag.Parse()

	var sc *scenario.Scenario
	if *scenarioPath == "" {
		log.Println("No scenario given, using the built-in default")
		sc = scenario.Default()
	} else {
		var err error
		sc, err = scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
		log.Printf("Scenario loaded from %s", *scenarioPath)
	}

	// Movement costs from smoothed noise in [1, 10]; cells above the
	// impassable threshold become walls.
	noise := opensimplex.NewNormalized(sc.Terrain.Seed)
	costs := grid.Map(grid.Empty(sc.Radius, 0.0), func(p hex.Point, _ float64) float64 {
		v := noise.Eval2(sc.Terrain.Frequency*float64(p.Q), sc.Terrain.Frequency*float64(p.R))
		if v > sc.Terrain.ImpassableAbove {
			return wallCost
		}
		return 1 + 9*v
	})

	obstacles := sc.ObstacleSet()
	for _, c := range costs.Cells() {
		if c.Value >= wallCost {
			obstacles.Add(c.Point)
		}
	}

	start, goal := sc.Start.Point(), sc.Goal.Point()
	log.Printf("Grid radius %d (%s cells), start (%d,%d), goal (%d,%d), %d obstacles",
		sc.Radius, humanize.Comma(int64(costs.Len())), start.Q, start.R, goal.Q, goal.R, obstacles.Len())

	bfsPath := path.BFS(start, goal, obstacles, costs)
	moveCost := func(from, to hex.Point) float64 {
		if obstacles.Has(to) {
			return wallCost
		}
		v, _ := costs.ValueAt(to)
		return v
	}
	dijPath := path.Dijkstra(start, goal, moveCost, costs)
	reach := path.Reachable(start, sc.MaxSteps, obstacles)
	fog := path.FogOfWar(start, obstacles, costs)

	reportPath("BFS", bfsPath, start, goal)
	reportPath("Dijkstra", dijPath, start, goal)
	log.Printf("Reachable within %d steps: %s cells", sc.MaxSteps, humanize.Comma(int64(reach.Len())))
	log.Printf("Hidden from start: %s cells", humanize.Comma(int64(fog.Len())))

	bfsSet := hex.NewSet(bfsPath...)
	dijSet := hex.NewSet(dijPath...)
	fmt.Println("paths (S start, G goal, # obstacle, * dijkstra, + bfs, = both):")
	fmt.Println(render(costs, func(p hex.Point) rune {
		switch {
		case p == start:
			return 'S'
		case p == goal:
			return 'G'
		case obstacles.Has(p):
			return '#'
		case dijSet.Has(p) && bfsSet.Has(p):
			return '='
		case dijSet.Has(p):
			return '*'
		case bfsSet.Has(p):
			return '+'
		}
		return '.'
	}))
	fmt.Println("visibility (S start, # obstacle, ~ hidden, : reachable):")
	fmt.Println(render(costs, func(p hex.Point) rune {
		switch {
		case p == start:
			return 'S'
		case obstacles.Has(p):
			return '#'
		case fog.Has(p):
			return '~'
		case reach.Has(p):
			return ':'
		}
		return '.'
	}))
}

// reportPath logs a path summary, treating the degenerate one-element
// result to a distinct goal as "unreachable".
func reportPath(name string, p []hex.Point, start, goal hex.Point) {
	switch {
	case len(p) == 0:
		log.Printf("%s: no path, start is an obstacle", name)
	case len(p) == 1 && goal != start:
		log.Printf("%s: goal unreachable", name)
	default:
		log.Printf("%s: %d steps", name, len(p)-1)
	}
}

// render draws the grid row by row, indenting each row by its distance
// from the middle to suggest the hex stagger.
func render[T any](g grid.Grid[T], classify func(hex.Point) rune) string {
	n := g.Radius()
	var b strings.Builder
	for r := -n; r <= n; r++ {
		indent := r
		if indent < 0 {
			indent = -indent
		}
		b.WriteString(strings.Repeat(" ", indent))
		for q := -n; q <= n; q++ {
			p := hex.Point{Q: q, R: r}
			if !g.Contains(p) {
				continue
			}
			b.WriteRune(classify(p))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
