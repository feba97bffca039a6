package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sortviz/step"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
)

// renderer prints one line per step. Without color, highlighted values are
// bracketed: <compared>, {swapped}, [sorted].
type renderer struct {
	w     io.Writer
	color bool
}

func (r renderer) step(i int, s step.Step) {
	role := make(map[int]byte, len(s.Array))
	for _, k := range s.Sorted {
		role[k] = 's'
	}
	for _, k := range s.Comparing {
		role[k] = 'c'
	}
	for _, k := range s.Swapping {
		role[k] = 'x'
	}

	cells := make([]string, len(s.Array))
	for k, e := range s.Array {
		cells[k] = r.cell(fmt.Sprintf("%g", e.Display()), role[k])
	}
	fmt.Fprintf(r.w, "%4d  %s\n", i+1, strings.Join(cells, " "))
}

func (r renderer) cell(v string, role byte) string {
	if r.color {
		switch role {
		case 'c':
			return ansiYellow + v + ansiReset
		case 'x':
			return ansiRed + v + ansiReset
		case 's':
			return ansiGreen + v + ansiReset
		}
		return v
	}
	switch role {
	case 'c':
		return "<" + v + ">"
	case 'x':
		return "{" + v + "}"
	case 's':
		return "[" + v + "]"
	}
	return v
}

func (r renderer) note(text string) {
	fmt.Fprintf(r.w, "      %s\n", text)
}
