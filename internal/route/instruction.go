package route

import (
	"strconv"
	"strings"
)

// Turn is a quarter turn applied before moving.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	}
	return "Turn(" + strconv.Itoa(int(t)) + ")"
}

// Instruction is one turn followed by Distance unit steps.
type Instruction struct {
	Turn     Turn
	Distance uint32
}

func (in Instruction) String() string {
	return in.Turn.String() + strconv.FormatUint(uint64(in.Distance), 10)
}

// Format joins instructions back into the form accepted by Parse.
func Format(ins []Instruction) string {
	parts := make([]string, len(ins))
	for i, in := range ins {
		parts[i] = in.String()
	}
	return strings.Join(parts, Separator)
}
