// Command perft counts leaf nodes reachable from a FEN root to a fixed
// depth, fanning work across root moves with errgroup since perft is
// embarrassingly parallel across root moves. With -check-parity it compares
// the legal-move counts of the piece-wise generator and the exhaustive
// 16-bit-scan generator at every non-leaf node below the root, and reports
// any difference on stderr without stopping.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidchess/chesscore"
	"golang.org/x/sync/errgroup"
)

func main() {
	fen := flag.String("fen", "", "FEN of the root position (default: classical start)")
	depth := flag.Int("depth", 5, "perft depth")
	checkParity := flag.Bool("check-parity", true, "cross-check pseudo-legal vs exhaustive generators at every node")
	flag.Parse()

	root := chesscore.StartPosition()
	if *fen != "" {
		p, err := chesscore.FromFEN(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, "perft:", err)
			os.Exit(1)
		}
		root = p
	}

	if *depth <= 0 {
		fmt.Println(1)
		return
	}

	moves := chesscore.GenerateLegal(root).Slice()
	counts := make([]uint64, len(moves))

	g, _ := errgroup.WithContext(context.Background())
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			next := root.DoMove(m, true)
			counts[i] = perft(next, *depth-1, *checkParity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	var total uint64
	for i, m := range moves {
		fmt.Printf("%s: %d\n", root.ToUCI(m), counts[i])
		total += counts[i]
	}
	fmt.Println("total:", total)
}

func perft(p chesscore.Position, depth int, checkParity bool) uint64 {
	if depth == 0 {
		return 1
	}
	legal := chesscore.GenerateLegal(p).Slice()
	if checkParity {
		exhaustive := chesscore.GenerateLegalExhaustive(p).Slice()
		if len(exhaustive) != len(legal) {
			fmt.Fprintf(os.Stderr, "perft: generator parity mismatch at %s: pseudo-legal=%d exhaustive=%d\n",
				p.ToFEN(true), len(legal), len(exhaustive))
		}
	}
	if depth == 1 {
		return uint64(len(legal))
	}
	var nodes uint64
	for _, m := range legal {
		nodes += perft(p.DoMove(m, true), depth-1, checkParity)
	}
	return nodes
}
