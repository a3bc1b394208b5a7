// Package clipboard copies text to the user's clipboard without reporting
// failure to the caller. A failed copy is logged at debug level and
// otherwise ignored.
package clipboard

import (
	"io"
	"os"
	"sync"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"
)

// Copier places text on a clipboard. Copy never blocks on user interaction
// and never fails visibly.
type Copier interface {
	Copy(text string)
}

// OSC52 writes an OSC 52 escape sequence, which terminals such as iTerm2,
// kitty, WezTerm and tmux (with set-clipboard on) turn into a clipboard
// write. It works over SSH where no system clipboard is reachable.
type OSC52 struct {
	mu     sync.Mutex
	w      io.Writer
	tmux   bool
	logger *log.Logger
}

// Option configures a copier.
type Option func(*options)

type options struct {
	logger *log.Logger
	tmux   bool
}

// WithLogger sets the logger used for debug output. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTmux wraps the OSC 52 sequence in a tmux passthrough.
func WithTmux(enabled bool) Option {
	return func(o *options) {
		o.tmux = enabled
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.Default(), tmux: os.Getenv("TMUX") != ""}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewOSC52 returns a copier that writes to w, typically the terminal.
func NewOSC52(w io.Writer, opts ...Option) *OSC52 {
	o := buildOptions(opts)
	return &OSC52{w: w, tmux: o.tmux, logger: o.logger}
}

// Copy writes the sequence for text.
func (c *OSC52) Copy(text string) {
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := seq.WriteTo(c.w); err != nil {
		c.logger.Debug("osc52 copy failed", "error", err)
		return
	}
	c.logger.Debug("copied via osc52", "bytes", len(text))
}

// System uses the platform clipboard tool (pbcopy, xclip, xsel, wl-copy or
// the Windows API). When none is available it hands the text to Fallback.
type System struct {
	Fallback Copier
	logger   *log.Logger
}

// NewSystem returns a copier for the platform clipboard. fallback may be nil.
func NewSystem(fallback Copier, opts ...Option) *System {
	o := buildOptions(opts)
	return &System{Fallback: fallback, logger: o.logger}
}

// Copy writes text to the platform clipboard, or to the fallback.
func (s *System) Copy(text string) {
	if !sysclip.Unsupported {
		err := sysclip.WriteAll(text)
		if err == nil {
			s.logger.Debug("copied via system clipboard", "bytes", len(text))
			return
		}
		s.logger.Debug("system clipboard failed", "error", err)
	}
	if s.Fallback != nil {
		s.Fallback.Copy(text)
	}
}

// Func adapts a function to the Copier interface.
type Func func(text string)

// Copy calls f(text).
func (f Func) Copy(text string) {
	f(text)
}
