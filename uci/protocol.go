// protocol.go parses the two line shapes a UCI engine sends that this
// driver must understand beyond the trivial acknowledgements: option
// declarations and search-progress info lines. Parsing is field-by-field
// scanning with a running index rather than a generated parser.

package uci

import "strconv"

// OptionType enumerates the five UCI option kinds.
type OptionType int

const (
	OptionCheck OptionType = iota
	OptionSpin
	OptionCombo
	OptionButton
	OptionString
)

// Option describes one "option name N type T ..." line.
type Option struct {
	Name    string
	Type    OptionType
	Default string
	Min     int
	Max     int
	Vars    []string
}

// ParseOption parses the body of an "option ..." line (without the leading
// "option" token). Unrecognized trailing fields are ignored rather than
// treated as a parse failure, matching engines that add vendor extensions.
func ParseOption(fields []string) Option {
	var o Option
	i := 0
	for i < len(fields) {
		switch fields[i] {
		case "name":
			i++
			start := i
			for i < len(fields) && fields[i] != "type" {
				i++
			}
			o.Name = joinFields(fields[start:i])
		case "type":
			i++
			if i < len(fields) {
				o.Type = parseOptionType(fields[i])
				i++
			}
		case "default":
			i++
			start := i
			for i < len(fields) && !isOptionKeyword(fields[i]) {
				i++
			}
			o.Default = joinFields(fields[start:i])
		case "min":
			i++
			if i < len(fields) {
				o.Min, _ = strconv.Atoi(fields[i])
				i++
			}
		case "max":
			i++
			if i < len(fields) {
				o.Max, _ = strconv.Atoi(fields[i])
				i++
			}
		case "var":
			i++
			start := i
			for i < len(fields) && fields[i] != "var" {
				i++
			}
			o.Vars = append(o.Vars, joinFields(fields[start:i]))
		default:
			i++
		}
	}
	return o
}

func isOptionKeyword(s string) bool {
	switch s {
	case "min", "max", "var":
		return true
	default:
		return false
	}
}

func joinFields(fields []string) string {
	s := ""
	for i, f := range fields {
		if i > 0 {
			s += " "
		}
		s += f
	}
	return s
}

func parseOptionType(s string) OptionType {
	switch s {
	case "check":
		return OptionCheck
	case "spin":
		return OptionSpin
	case "combo":
		return OptionCombo
	case "button":
		return OptionButton
	default:
		return OptionString
	}
}

// Score is an info line's "score cp N" or "score mate N" field.
type Score struct {
	IsMate bool
	Value  int
}

// Info accumulates the tokens a "info ..." line may carry; unset fields
// are left at their zero value and Has* is not modeled, since
// unknown/malformed tokens only need to be skipped, not distinguished.
type Info struct {
	Depth          int
	SelDepth       int
	TimeMs         int
	Nodes          int64
	NPS            int64
	Score          Score
	PV             []string
	MultiPV        int
	CurrMove       string
	CurrMoveNumber int
	HashFull       int
	TBHits         int64
	String         string
}

// ParseInfo parses the body of an "info ..." line. Unknown tokens are
// skipped silently; a numeric field that fails to parse is left at zero
// rather than aborting the rest of the line.
func ParseInfo(fields []string) Info {
	var info Info
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			i++
			info.Depth = atoiField(fields, i)
		case "seldepth":
			i++
			info.SelDepth = atoiField(fields, i)
		case "time":
			i++
			info.TimeMs = atoiField(fields, i)
		case "nodes":
			i++
			info.Nodes = atoi64Field(fields, i)
		case "nps":
			i++
			info.NPS = atoi64Field(fields, i)
		case "multipv":
			i++
			info.MultiPV = atoiField(fields, i)
		case "currmove":
			i++
			if i < len(fields) {
				info.CurrMove = fields[i]
			}
		case "currmovenumber":
			i++
			info.CurrMoveNumber = atoiField(fields, i)
		case "hashfull":
			i++
			info.HashFull = atoiField(fields, i)
		case "tbhits":
			i++
			info.TBHits = atoi64Field(fields, i)
		case "score":
			i++
			if i < len(fields) {
				if fields[i] == "mate" {
					info.Score.IsMate = true
					i++
					info.Score.Value = atoiField(fields, i)
				} else if fields[i] == "cp" {
					i++
					info.Score.Value = atoiField(fields, i)
				}
			}
		case "pv":
			i++
			info.PV = append([]string(nil), fields[i:]...)
			i = len(fields)
		case "string":
			i++
			info.String = joinFields(fields[i:])
			i = len(fields)
		default:
			// sbhits, cpuload, refutation, currline, and unknown vendor
			// extensions are accepted but carry no structured field.
		}
	}
	return info
}

func atoiField(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	v, _ := strconv.Atoi(fields[i])
	return v
}

func atoi64Field(fields []string, i int) int64 {
	if i >= len(fields) {
		return 0
	}
	v, _ := strconv.ParseInt(fields[i], 10, 64)
	return v
}
