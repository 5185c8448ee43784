// Command pgnfmt reads a PGN stream from stdin (or a file argument) and
// writes each game back out in chesscore's canonical PGN form, a
// round-tripper useful for verifying the tokenizer/emitter pair against
// real game archives.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvidchess/chesscore"
)

func main() {
	quiet := flag.Bool("quiet", false, "suppress per-game parse-failure warnings")
	flag.Parse()

	var r *os.File = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "pgnfmt:", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	games, err := chesscore.ParseGames(r, *quiet)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pgnfmt:", err)
		os.Exit(1)
	}

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(g.ToPGN())
	}
}
