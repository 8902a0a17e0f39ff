package grid

import (
	"io"
	"os"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

// NewLogger returns the engine's trace logger writing text lines to w
// (stderr when nil). It starts enabled only when debug is set.
func NewLogger(w io.Writer, debug bool) *ll.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := ll.New("grid").Handler(lh.NewTextHandler(w))
	if debug {
		logger.Enable()
	} else {
		logger.Disable()
	}
	return logger
}

// warnOnce logs a state-consistency warning the first time key is seen.
func (g *Grid) warnOnce(key, format string, args ...any) {
	g.warnMu.Lock()
	defer g.warnMu.Unlock()
	if g.warned[key] {
		return
	}
	if g.warned == nil {
		g.warned = make(map[string]bool)
	}
	g.warned[key] = true
	g.log.Warnf(format, args...)
}
