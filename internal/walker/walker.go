package walker

import (
	"fmt"
	"io"

	"github.com/kr/pretty"

	"taxicab/internal/route"
)

// Walker follows instructions one unit step at a time and remembers every
// cell it has stood on.
type Walker struct {
	Position Position
	Heading  Heading

	// Trace, if set, receives one line per unit step.
	Trace io.Writer

	visited  map[Position]struct{}
	repeat   *Position
	steps    uint64
	min, max Position
}

// New returns a walker at the origin facing North. The origin counts as
// visited.
func New() *Walker {
	w := &Walker{
		Heading: North,
		visited: make(map[Position]struct{}),
	}
	w.visited[w.Position] = struct{}{}
	return w
}

// Apply turns, then walks in.Distance unit steps nearest first. Each step
// is checked against the visited set before it is recorded. An endpoint
// outside the coordinate range panics before the walker changes.
func (w *Walker) Apply(in route.Instruction) {
	h := w.Heading.Turn(in.Turn)
	d := h.Step()
	end := w.Position.Advance(d, in.Distance)
	p := w.Position
	for k := uint32(0); k < in.Distance; k++ {
		p = p.Add(d)
		w.visit(p)
	}
	w.Position = end
	w.Heading = h
}

func (w *Walker) visit(p Position) {
	w.steps++
	if w.Trace != nil {
		pretty.Fprintf(w.Trace, "visiting: %# v\n", p)
	}
	if _, ok := w.visited[p]; ok {
		if w.repeat == nil {
			r := p
			w.repeat = &r
		}
		return
	}
	w.visited[p] = struct{}{}
	w.min.X = min(w.min.X, p.X)
	w.min.Y = min(w.min.Y, p.Y)
	w.max.X = max(w.max.X, p.X)
	w.max.Y = max(w.max.Y, p.Y)
}

// Visited reports whether the walker has stood on p.
func (w *Walker) Visited(p Position) bool {
	_, ok := w.visited[p]
	return ok
}

// FirstRepeat is the first cell stepped on twice. It never changes once set.
func (w *Walker) FirstRepeat() (Position, bool) {
	if w.repeat == nil {
		return Position{}, false
	}
	return *w.repeat, true
}

func (w *Walker) String() string {
	return fmt.Sprintf("%v facing %v", w.Position, w.Heading)
}

// Result is the outcome of a walk.
type Result struct {
	Final   Position
	Repeat  *Position // nil when no cell was visited twice
	Steps   uint64
	Visited int // distinct cells, origin included
}

func (w *Walker) Result() Result {
	r := Result{
		Final:   w.Position,
		Steps:   w.steps,
		Visited: len(w.visited),
	}
	if p, ok := w.FirstRepeat(); ok {
		r.Repeat = &p
	}
	return r
}

func (r Result) FinalDistance() uint64 {
	return r.Final.Manhattan()
}

// RepeatDistance is false when the walk never crossed itself.
func (r Result) RepeatDistance() (uint64, bool) {
	if r.Repeat == nil {
		return 0, false
	}
	return r.Repeat.Manhattan(), true
}

// Walk runs ins from the origin.
func Walk(ins []route.Instruction) Result {
	w := New()
	for _, in := range ins {
		w.Apply(in)
	}
	return w.Result()
}
