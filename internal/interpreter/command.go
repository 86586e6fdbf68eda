package interpreter

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// CommandKind tags the closed set of commands the interpreter understands.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdPlace
	CmdMove
	CmdLeft
	CmdRight
	CmdReport
)

// Command is one parsed input line. Only CmdPlace carries a payload. Blank,
// unknown, and malformed lines all parse to CmdUnknown, which the
// interpreter treats as a no-op.
type Command struct {
	Kind   CommandKind
	X, Y   int
	Facing Facing
}

// placement is the grammar for the PLACE argument token: exactly three
// comma-separated fields. The lexer has no whitespace rule, so a payload
// with interior spaces fails to lex and the line is dropped.
type placement struct {
	X      int    `parser:"@Int ','"`
	Y      int    `parser:"@Int ','"`
	Facing string `parser:"@Ident"`
}

var placementLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Comma", Pattern: `,`},
})

var placementParser = participle.MustBuild[placement](
	participle.Lexer(placementLexer),
)

// ParseLine maps one raw input line to a Command. The keyword is the first
// whitespace-separated field, matched case-insensitively; tokens beyond the
// ones a command consumes are ignored. Any malformed PLACE payload (wrong
// field count, non-integer coordinate, unknown direction) rejects the whole
// line.
func ParseLine(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	switch strings.ToUpper(fields[0]) {
	case "PLACE":
		if len(fields) < 2 {
			return Command{}
		}
		p, err := placementParser.ParseString("", fields[1])
		if err != nil {
			return Command{}
		}
		f, ok := ParseFacing(p.Facing)
		if !ok {
			return Command{}
		}
		return Command{Kind: CmdPlace, X: p.X, Y: p.Y, Facing: f}
	case "MOVE":
		return Command{Kind: CmdMove}
	case "LEFT":
		return Command{Kind: CmdLeft}
	case "RIGHT":
		return Command{Kind: CmdRight}
	case "REPORT":
		return Command{Kind: CmdReport}
	}
	return Command{}
}
