package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/chamfer"
)

// progress draws a one-line percentage per stage on a terminal.
type progress struct {
	w    io.Writer
	last int
}

// newProgress returns nil when f is not a terminal.
func newProgress(f *os.File) *progress {
	if !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return &progress{w: f, last: -1}
}

func (p *progress) update(e chamfer.ProgressEvent) {
	if e.Stage == chamfer.StageDone {
		fmt.Fprint(p.w, "\r\033[K")
		return
	}
	pct := 100
	if e.Rows > 0 {
		pct = e.Row * 100 / e.Rows
	}
	if pct == p.last && e.Row != 0 {
		return
	}
	p.last = pct
	fmt.Fprintf(p.w, "\r%-14s %3d%%", e.Stage, pct)
}
