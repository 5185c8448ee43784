package chesscore

import (
	"strings"
	"testing"
)

const samplePGN = `[Event "Test Game"]
[Site "?"]
[Date "2026.01.01"]
[Round "1"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 {Ruy Lopez} 4. Ba4 Nf6 5. O-O Be7
6. Re1 b5 7. Bb3 d6 8. c3 O-O 1-0
`

func TestParseGamesSingle(t *testing.T) {
	games, err := ParseGames(strings.NewReader(samplePGN), false)
	if err != nil {
		t.Fatalf("ParseGames: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	g := games[0]
	if v, _ := g.Headers.Get("White"); v != "Alice" {
		t.Errorf("White header = %q, want Alice", v)
	}
	if g.Result() != "1-0" {
		t.Errorf("Result() = %q, want 1-0", g.Result())
	}
	if len(g.Moves()) != 16 {
		t.Errorf("expected 16 half-moves, got %d", len(g.Moves()))
	}
}

func TestParseGamesMultiGameRecoversFromBadGame(t *testing.T) {
	stream := `[Event "Good"]
[Result "*"]

1. e4 e5 *

[Event "Bad"]
[Result "*"]

1. e4 Qh5xyz *

[Event "AlsoGood"]
[Result "*"]

1. d4 d5 *
`
	games, err := ParseGames(strings.NewReader(stream), true)
	if err != nil {
		t.Fatalf("ParseGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 recoverable games out of 3, got %d", len(games))
	}
}

func TestToPGNRoundTrip(t *testing.T) {
	games, err := ParseGames(strings.NewReader(samplePGN), false)
	if err != nil {
		t.Fatalf("ParseGames: %v", err)
	}
	out := games[0].ToPGN()
	reparsed, err := ParseGames(strings.NewReader(out), false)
	if err != nil {
		t.Fatalf("ParseGames(re-emitted): %v", err)
	}
	if len(reparsed) != 1 {
		t.Fatalf("expected 1 game from re-emitted PGN, got %d", len(reparsed))
	}
	if len(reparsed[0].Moves()) != len(games[0].Moves()) {
		t.Errorf("move count mismatch after round trip: %d vs %d",
			len(reparsed[0].Moves()), len(games[0].Moves()))
	}
}

func TestStripComments(t *testing.T) {
	in := "1. e4 {a comment} e5 ; trailing line comment\n2. Nf3 (2. Bc4 Nc6) Nc6"
	out := stripComments(in)
	if strings.Contains(out, "comment") || strings.Contains(out, "trailing") || strings.Contains(out, "Bc4") {
		t.Errorf("stripComments left comment text behind: %q", out)
	}
	if !strings.Contains(out, "e4") || !strings.Contains(out, "Nf3") {
		t.Errorf("stripComments removed mainline tokens: %q", out)
	}
}
