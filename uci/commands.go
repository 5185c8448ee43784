// commands.go renders the outbound UCI command strings ("uci", "isready",
// "position ...", "go ...", etc.) and parses the two terminal response
// lines ("bestmove"/"id") the driver acts on directly, leaving
// "option"/"info" to protocol.go.

package uci

import (
	"fmt"
	"strings"
)

// GoParams holds the optional fields of a "go" command; zero value fields
// are simply omitted from the rendered command.
type GoParams struct {
	MoveTime   int // ms
	Depth      int
	Nodes      int
	WTime      int
	BTime      int
	WInc       int
	BInc       int
	MovesToGo  int
	Infinite   bool
}

// PositionCommand renders "position startpos [moves ...]" or
// "position fen ... [moves ...]".
func PositionCommand(fen string, moves []string) string {
	var b strings.Builder
	b.WriteString("position ")
	if fen == "" || fen == "startpos" {
		b.WriteString("startpos")
	} else {
		b.WriteString("fen ")
		b.WriteString(fen)
	}
	if len(moves) > 0 {
		b.WriteString(" moves ")
		b.WriteString(strings.Join(moves, " "))
	}
	return b.String()
}

// GoCommand renders a "go ..." command from params' non-zero fields.
func GoCommand(p GoParams) string {
	var b strings.Builder
	b.WriteString("go")
	writeField := func(name string, v int) {
		if v != 0 {
			fmt.Fprintf(&b, " %s %d", name, v)
		}
	}
	writeField("movetime", p.MoveTime)
	writeField("depth", p.Depth)
	writeField("nodes", p.Nodes)
	writeField("wtime", p.WTime)
	writeField("btime", p.BTime)
	writeField("winc", p.WInc)
	writeField("binc", p.BInc)
	writeField("movestogo", p.MovesToGo)
	if p.Infinite {
		b.WriteString(" infinite")
	}
	return b.String()
}

// SetOptionCommand renders "setoption name N value V", or "setoption name
// N" alone when value is empty (UCI button options take no value).
func SetOptionCommand(name, value string) string {
	if value == "" {
		return "setoption name " + name
	}
	return "setoption name " + name + " value " + value
}

// BestMove is the parsed "bestmove M [ponder M']" response.
type BestMove struct {
	Move   string
	Ponder string
}

// ParseBestMove parses a "bestmove ..." line's fields (without the leading
// "bestmove" token).
func ParseBestMove(fields []string) BestMove {
	var bm BestMove
	if len(fields) > 0 {
		bm.Move = fields[0]
	}
	if len(fields) >= 3 && fields[1] == "ponder" {
		bm.Ponder = fields[2]
	}
	return bm
}

// IDLine is a parsed "id name N" or "id author N" response.
type IDLine struct {
	Name   string
	Author string
}

// ParseID merges one "id ..." line's fields into id.
func ParseID(id *IDLine, fields []string) {
	if len(fields) < 2 {
		return
	}
	switch fields[0] {
	case "name":
		id.Name = strings.Join(fields[1:], " ")
	case "author":
		id.Author = strings.Join(fields[1:], " ")
	}
}
