package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"taxicab/internal/route"
	"taxicab/internal/walker"
)

func main() {
	log.SetFlags(0)
	literal := flag.String("e", "", "instructions, e.g. \"R2, L3\" (instead of a file)")
	trace := flag.Bool("trace", false, "print every unit step to stderr")
	showMap := flag.Bool("map", false, "draw the walked path")
	stats := flag.Bool("stats", false, "print coordinates and walk statistics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-e instructions] [-trace] [-map] [-stats] [file|-]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	ins, err := readInstructions(*literal, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	w := walker.New()
	if *trace {
		w.Trace = os.Stderr
	}
	for _, in := range ins {
		w.Apply(in)
	}
	res := w.Result()

	report(os.Stdout, res, len(ins), *stats)
	if *showMap {
		if err := w.Display(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}

func readInstructions(literal, path string) ([]route.Instruction, error) {
	switch {
	case literal != "":
		return route.Parse(literal)
	case path == "" || path == "-":
		return route.Read(os.Stdin)
	}
	return route.Load(path)
}

func report(out io.Writer, res walker.Result, n int, stats bool) {
	if stats {
		fmt.Fprintf(out, "end spot: %v\n", res.Final)
	}
	fmt.Fprintf(out, "final: %d\n", res.FinalDistance())
	if d, ok := res.RepeatDistance(); ok {
		if stats {
			fmt.Fprintf(out, "seen twice: %v\n", *res.Repeat)
		}
		fmt.Fprintf(out, "first repeat: %d\n", d)
	}
	if stats {
		fmt.Fprintf(out, "%s instructions, %s unit steps, %s distinct blocks\n",
			humanize.Comma(int64(n)), humanize.Comma(int64(res.Steps)), humanize.Comma(int64(res.Visited)))
	}
}
