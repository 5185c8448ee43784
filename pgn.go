// pgn.go implements Portable Game Notation parsing and emission: a
// comment-stripping tokenizer, header-block/movetext-block segmentation with
// per-game warn-and-continue recovery, and a canonical Seven Tag Roster
// emitter. Comments and variations are stripped before tokenizing, and
// movetext is replayed as SAN/UCI tokens against a running position rather
// than parsed against a movetext grammar.

package chesscore

import (
	"io"
	"regexp"
	"strconv"
	"strings"
)

var headerLineRe = regexp.MustCompile(`^\[(\S+)\s+"((?:[^"\\]|\\.)*)"\]\s*$`)

// moveNumPrefixRe strips a leading move-number/dot-run from a movetext
// token: "1.", "1...", and bare "..." all reduce to "".
var moveNumPrefixRe = regexp.MustCompile(`^\d*\.+`)

var nagRe = regexp.MustCompile(`^\$\d+$`)

func isResultToken(s string) bool {
	switch s {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}

// stripComments removes PGN's two comment forms, "{...}" (possibly
// multi-line) and ";..." (to end of line), and "(...)" recursive
// annotation variations, none of which belong in the mainline. Depths are
// tracked independently since PGN does not require them to nest
// consistently with each other.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	braceDepth, parenDepth := 0, 0
	inLineComment := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inLineComment:
			if c == '\n' {
				inLineComment = false
				b.WriteByte(c)
			}
		case braceDepth > 0:
			if c == '{' {
				braceDepth++
			} else if c == '}' {
				braceDepth--
			}
		case parenDepth > 0:
			if c == '(' {
				parenDepth++
			} else if c == ')' {
				parenDepth--
			}
		case c == '{':
			braceDepth = 1
		case c == '(':
			parenDepth = 1
		case c == ';':
			inLineComment = true
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// tokenizeMovetext splits comment-stripped movetext into SAN/UCI tokens,
// dropping move numbers, NAGs ("$3"), and the trailing "!?" annotation
// punctuation that ToMove's own suffix stripping doesn't already handle.
func tokenizeMovetext(s string) []string {
	var tokens []string
	for _, f := range strings.Fields(s) {
		f = moveNumPrefixRe.ReplaceAllString(f, "")
		f = strings.TrimRight(f, "!?")
		if f == "" || nagRe.MatchString(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func unescapePGNString(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

func isSevenTag(k string) bool {
	for _, t := range sevenTagRoster {
		if t == k {
			return true
		}
	}
	return false
}

// ParseGames reads a stream of zero or more PGN games from r. A game whose
// headers or movetext fail to parse is skipped rather than aborting the
// whole stream; unless suppressWarnings is set, each skip is logged with
// the 1-based line range it spanned.
func ParseGames(r io.Reader, suppressWarnings bool) ([]*Game, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(stripComments(string(data)), "\n")

	var games []*Game
	var headerLines []string
	var movetext strings.Builder
	gameStartLine := 1
	inMovetext := false

	flush := func(endLine int) {
		if len(headerLines) == 0 && movetext.Len() == 0 {
			return
		}
		g, err := parseOneGame(headerLines, movetext.String())
		if err != nil {
			if !suppressWarnings {
				log.Warningf("pgn: game at lines %d-%d failed to parse: %v", gameStartLine, endLine, err)
			}
		} else {
			games = append(games, g)
		}
		headerLines = nil
		movetext.Reset()
		inMovetext = false
	}

	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if headerLineRe.MatchString(trimmed) {
			if inMovetext {
				flush(lineNo - 1)
				gameStartLine = lineNo
			}
			headerLines = append(headerLines, trimmed)
			continue
		}
		inMovetext = true
		movetext.WriteString(line)
		movetext.WriteByte(' ')
	}
	flush(len(lines))
	return games, nil
}

func parseOneGame(headerLines []string, movetext string) (*Game, error) {
	g := NewGame()
	g.Headers = NewHeaders()
	for _, line := range headerLines {
		m := headerLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, newError(ParseFormat, line, "malformed PGN header line")
		}
		g.Headers.Set(m[1], unescapePGNString(m[2]))
	}
	if fen, ok := g.Headers.Get("FEN"); ok {
		start, err := FromFEN(fen)
		if err != nil {
			return nil, err
		}
		g.startPosition = start
	}
	g.result = "*"

	for _, tok := range tokenizeMovetext(movetext) {
		if isResultToken(tok) {
			g.result = tok
			return g, nil
		}
		if err := g.AddMoveString(tok); err != nil {
			return nil, newWrappedError(ParseContent, tok, "invalid move token in PGN movetext", err)
		}
	}
	return g, nil
}

// ToPGN renders g canonically: the Seven Tag Roster first (defaulting
// missing tags to "?"), then any remaining headers in insertion order, a
// blank line, movetext wrapped every 16 half-moves with "N. "/"N... " move
// numbering, and the terminal result token.
func (g *Game) ToPGN() string {
	var b strings.Builder

	writeHeader := func(k, v string) {
		b.WriteByte('[')
		b.WriteString(k)
		b.WriteString(` "`)
		b.WriteString(strings.ReplaceAll(v, `"`, `\"`))
		b.WriteString("\"]\n")
	}

	for _, k := range sevenTagRoster {
		v := "?"
		if k == "Result" {
			v = g.result
		} else if stored, ok := g.Headers.Get(k); ok {
			v = stored
		}
		writeHeader(k, v)
	}
	for _, k := range g.Headers.Keys() {
		if isSevenTag(k) {
			continue
		}
		v, _ := g.Headers.Get(k)
		writeHeader(k, v)
	}
	b.WriteByte('\n')

	cur := g.startPosition
	lineHalfmoves := 0
	for i, m := range g.moves {
		if cur.us == White {
			b.WriteString(strconv.Itoa(cur.FullmoveNumber()))
			b.WriteString(". ")
		} else if i == 0 {
			b.WriteString(strconv.Itoa(cur.FullmoveNumber()))
			b.WriteString("... ")
		}
		b.WriteString(cur.ToSAN(m))
		b.WriteByte(' ')
		cur = cur.DoMove(m, true)
		lineHalfmoves++
		if lineHalfmoves == 16 {
			b.WriteByte('\n')
			lineHalfmoves = 0
		}
	}
	b.WriteString(g.result)
	b.WriteByte('\n')
	return b.String()
}
