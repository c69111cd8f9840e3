package route

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Separator sits between two instruction tokens.
const Separator = ", "

type step struct {
	Turn     Turn     `parser:"@Turn"`
	Distance distance `parser:"@Distance"`
}

func (t *Turn) Capture(values []string) error {
	switch values[0] {
	case "L":
		*t = TurnLeft
	case "R":
		*t = TurnRight
	default:
		return ErrTurn
	}
	return nil
}

// distance is always base 10, so leading zeros are not octal.
type distance uint32

func (d *distance) Capture(values []string) error {
	n, err := strconv.ParseUint(values[0], 10, 32)
	if err != nil {
		return err
	}
	*d = distance(n)
	return nil
}

var stepLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Turn", Pattern: `[LR]`},
	{Name: "Distance", Pattern: `[0-9]+`},
})

var parser = participle.MustBuild[step](participle.Lexer(stepLexer))

// Parse reads a list such as "R2, L3, R2". Tokens are split on Separator
// exactly; the first bad token fails the whole parse.
func Parse(data string) ([]Instruction, error) {
	tokens := strings.Split(data, Separator)
	ins := make([]Instruction, 0, len(tokens))
	for i, tok := range tokens {
		in, err := parseToken(tok)
		if err != nil {
			err.Index = i
			err.Token = tok
			return nil, err
		}
		ins = append(ins, in)
	}
	return ins, nil
}

func parseToken(tok string) (Instruction, *ParseError) {
	// the grammar cannot fail on the turn once the first byte is L or R
	if tok == "" || (tok[0] != 'L' && tok[0] != 'R') {
		return Instruction{}, &ParseError{Kind: InvalidTurnToken, Err: ErrTurn}
	}
	st, err := parser.ParseString("", tok)
	if err != nil {
		return Instruction{}, &ParseError{Kind: InvalidDistance, Err: err}
	}
	return Instruction{Turn: st.Turn, Distance: uint32(st.Distance)}, nil
}

// Read parses everything in r. One trailing line ending is dropped, since
// files and the puzzle site end the list with a newline.
func Read(r io.Reader) ([]Instruction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if bytes.HasSuffix(data, []byte("\n")) {
		data = bytes.TrimSuffix(data[:len(data)-1], []byte("\r"))
	}
	return Parse(string(data))
}

// Load parses the instruction file at path.
func Load(path string) ([]Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ins, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ins, nil
}
