// Package verdict provides the two-valued access decision and its stdout rendering.

package verdict

import (
	"fmt"
	"io"
	"sync"
)

const (
	TokenGranted = "SIM"
	TokenDenied  = "NAO"
)

// Verdict is an access decision. The zero value is Denied.
type Verdict int

const (
	Denied Verdict = iota
	Granted
)

// FromBool converts an access_granted flag into a Verdict.
func FromBool(granted bool) Verdict {
	if granted {
		return Granted
	}
	return Denied
}

// Granted reports whether access is granted.
func (v Verdict) Granted() bool {
	return v == Granted
}

// Token returns the literal read by the native caller.
func (v Verdict) Token() string {
	if v == Granted {
		return TokenGranted
	}
	return TokenDenied
}

func (v Verdict) String() string {
	return v.Token()
}

// Printer writes exactly one verdict line. Later calls are ignored, so a
// failure surfacing after the decision was printed cannot add a second line.
type Printer struct {
	once    sync.Once
	w       io.Writer
	printed Verdict
	done    bool
}

// NewPrinter initializes a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the verdict token followed by a newline, once.
func (p *Printer) Print(v Verdict) {
	p.once.Do(func() {
		p.printed = v
		p.done = true
		_, _ = fmt.Fprintln(p.w, v.Token())
	})
}

// Printed returns the verdict written so far and whether anything was written.
func (p *Printer) Printed() (Verdict, bool) {
	return p.printed, p.done
}
