package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taxicab/internal/route"
	"taxicab/internal/walker"
)

func run(t *testing.T, s string, stats bool) string {
	t.Helper()
	ins, err := readInstructions(s, "")
	if err != nil {
		t.Fatalf("read %q: %v", s, err)
	}
	var buf bytes.Buffer
	report(&buf, walker.Walk(ins), len(ins), stats)
	return buf.String()
}

func TestReport(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R2, L3", "final: 5\n"},
		{"R8, R4, R4, R8", "final: 8\nfirst repeat: 4\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.in, false); got != tt.want {
			t.Errorf("%q: want %q got %q", tt.in, tt.want, got)
		}
	}
}

func TestReportStats(t *testing.T) {
	got := run(t, "R8, R4, R4, R8", true)
	want := "end spot: (4,4)\nfinal: 8\nseen twice: (4,0)\nfirst repeat: 4\n" +
		"4 instructions, 24 unit steps, 24 distinct blocks\n"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	got = run(t, "R1000, R1000", true)
	if !strings.Contains(got, "2,000 unit steps, 2,001 distinct blocks") {
		t.Fatalf("counts not grouped: %q", got)
	}
}

func TestReadInstructionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("R5, L5, R5, R3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ins, err := readInstructions("", path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if d := walker.Walk(ins).FinalDistance(); d != 12 {
		t.Fatalf("want 12 got %d", d)
	}
}

func TestReadInstructionsLiteralWins(t *testing.T) {
	ins, err := readInstructions("X1", filepath.Join(t.TempDir(), "missing"))
	var perr *route.ParseError
	if !errors.As(err, &perr) || perr.Kind != route.InvalidTurnToken {
		t.Fatalf("want turn error from the literal, got %v %v", ins, err)
	}
}

// withStdin points os.Stdin at a fresh file holding data.
func withStdin(t *testing.T, data string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdin
	os.Stdin = f
	t.Cleanup(func() {
		os.Stdin = old
		f.Close()
	})
}

func TestReadInstructionsStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		withStdin(t, "R8, R4, R4, R8\n")
		ins, err := readInstructions("", path)
		if err != nil {
			t.Fatalf("path %q: %v", path, err)
		}
		res := walker.Walk(ins)
		if d, ok := res.RepeatDistance(); !ok || d != 4 || res.FinalDistance() != 8 {
			t.Fatalf("path %q: unexpected result %+v", path, res)
		}
	}
}

func TestReadInstructionsLiteralOverStdin(t *testing.T) {
	withStdin(t, "R8, R4, R4, R8\n")
	ins, err := readInstructions("R2, L3", "-")
	if err != nil {
		t.Fatal(err)
	}
	if got := route.Format(ins); got != "R2, L3" {
		t.Fatalf("stdin read instead of the literal: %q", got)
	}
}

func TestReadInstructionsStdinError(t *testing.T) {
	withStdin(t, "R8, r4\n")
	_, err := readInstructions("", "")
	var perr *route.ParseError
	if !errors.As(err, &perr) || perr.Kind != route.InvalidTurnToken || perr.Index != 1 {
		t.Fatalf("want turn error at 1, got %v", err)
	}
}
