// Command gridsolve reads a grid in text form from a file or stdin and
// prints the cheapest Start→Destination route.
//
//	gridsolve [-strategy heap|scan] [-symmetric] [-v] [grid.txt]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var log = logrus.New()

func main() {
	strategyName := flag.String("strategy", "heap", "frontier strategy: heap or scan")
	symmetric := flag.Bool("symmetric", false, "ignore travel direction when costing steps")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(os.Stdout, flag.Arg(0), *strategyName, *symmetric); err != nil {
		log.Error(err)
		if errors.Is(err, dijkstra.ErrMissingEndpoint) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(out io.Writer, path, strategyName string, symmetric bool) error {
	strategy, err := dijkstra.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	opts := []dijkstra.Option{dijkstra.WithStrategy(strategy)}
	if symmetric {
		opts = append(opts, dijkstra.WithCostFunc(dijkstra.TerrainCost))
	}

	var text []byte
	if path == "" || path == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	g, err := gridgraph.Parse(string(text))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows":      g.Rows(),
		"cols":      g.Cols(),
		"strategy":  strategy.String(),
		"symmetric": symmetric,
	}).Debug("solving")

	res, err := dijkstra.SolveGrid(g, opts...)
	if err != nil {
		return err
	}
	if !res.Reachable() {
		fmt.Fprintln(out, "No path found.")
		return nil
	}
	fmt.Fprintf(out, "Path found! Cost: %g (%d steps)\n", res.Cost, len(res.Path)-1)
	fmt.Fprint(out, res.Render(g))
	return nil
}
