// Package peek is the entry surface: hand it a buffer source and it logs a
// terminal rendering of the contents through zerolog. Malformed input never
// fails a call; it turns into a single warning line and no grid.
package peek

import (
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/san-kum/tensorpeek/pkg/render"
	"github.com/san-kum/tensorpeek/pkg/termcap"
	"github.com/san-kum/tensorpeek/pkg/view"
)

// Logger renders buffers into a structured log. It holds no per-render
// state: every call re-reads terminal capability and builds its grid from
// scratch, so concurrent calls only share the caller's read-only buffers.
type Logger struct {
	log    zerolog.Logger
	opts   render.Options
	detect func() termcap.Capability
}

// New builds a Logger writing through l. Zero options mean defaults.
func New(l zerolog.Logger, opts render.Options) *Logger {
	return &Logger{log: l, opts: opts, detect: termcap.Detect}
}

// WithCapability pins terminal capability instead of reading COLORTERM,
// for tests and for callers that probe the terminal themselves.
func (p *Logger) WithCapability(c termcap.Capability) *Logger {
	q := *p
	q.detect = func() termcap.Capability { return c }
	return &q
}

// Log renders every channel of src at info level. The optional name
// replaces the adapter's default label in the header.
func (p *Logger) Log(src view.Source, name ...string) {
	p.emit(src, -1, first(name))
}

// LogChannel renders one channel of src at info level.
func (p *Logger) LogChannel(src view.Source, ch int, name ...string) {
	p.emit(src, ch, first(name))
}

func (p *Logger) emit(src view.Source, ch int, name string) {
	text, err := p.render(src, ch, name)
	if err != nil {
		p.log.Warn().Msg(err.Error())
		return
	}
	p.log.Info().Msg(text)
}

func (p *Logger) render(src view.Source, ch int, name string) (string, error) {
	v, err := src.View()
	if err != nil {
		return "", err
	}
	opts := p.opts
	opts.Color = p.detect()
	if ch >= 0 {
		return render.Channel(v, ch, name, opts)
	}
	return render.Buffer(v, name, opts)
}

func first(name []string) string {
	if len(name) > 0 {
		return name[0]
	}
	return ""
}

// Log renders through the global zerolog logger.
func Log(src view.Source, name ...string) {
	New(zlog.Logger, render.Options{}).Log(src, name...)
}

// LogChannel renders one channel through the global zerolog logger.
func LogChannel(src view.Source, ch int, name ...string) {
	New(zlog.Logger, render.Options{}).LogChannel(src, ch, name...)
}

// Render returns the rendered text without logging it. Capability is read
// from the environment at call time, exactly like the logging variants.
func Render(src view.Source, name ...string) (string, error) {
	return New(zlog.Logger, render.Options{}).render(src, -1, first(name))
}

// RenderChannel is the explicit-channel variant of Render.
func RenderChannel(src view.Source, ch int, name ...string) (string, error) {
	return New(zlog.Logger, render.Options{}).render(src, ch, first(name))
}
