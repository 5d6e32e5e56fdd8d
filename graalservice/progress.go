package graalservice

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressReporter tracks progress across a batch alignment run, rendering
// an interactive bar to a terminal writer and staying silent otherwise.
type ProgressReporter interface {
	Initialize(total int)
	Start()
	Update(processed, total int)
	Complete()
	SetWriter(w io.Writer)
}

// BarProgressReporter implements ProgressReporter with a schollz/progressbar
// terminal bar, degrading to a no-op when the writer is not a terminal.
type BarProgressReporter struct {
	mu          sync.Mutex
	writer      io.Writer
	bar         *progressbar.ProgressBar
	interactive bool
	total       int
}

// NewProgressReporter builds a BarProgressReporter writing to stderr, showing
// the bar only when stderr is an interactive terminal.
func NewProgressReporter() *BarProgressReporter {
	return &BarProgressReporter{
		writer:      os.Stderr,
		interactive: isTerminalWriter(os.Stderr),
	}
}

func (r *BarProgressReporter) Initialize(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
}

func (r *BarProgressReporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.interactive && r.bar == nil {
		r.bar = r.newBar(r.total)
	}
}

func (r *BarProgressReporter) Update(processed, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil && r.interactive {
		r.bar = r.newBar(total)
	}
	if r.bar != nil {
		_ = r.bar.Set(processed)
	}
}

func (r *BarProgressReporter) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

func (r *BarProgressReporter) SetWriter(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writer = w
	r.interactive = isTerminalWriter(w)
}

func (r *BarProgressReporter) newBar(max int) *progressbar.ProgressBar {
	writer := r.writer
	if writer == nil {
		writer = io.Discard
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription("Aligning"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(writer)
		}),
	)
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
