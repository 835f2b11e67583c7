// Package logging builds the zerolog loggers used by daisy's tooling.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output formats accepted by Options.Format.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// New creates a logger writing to opts.Writer (stderr when nil).
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	switch opts.Format {
	case "", FormatAuto:
		if IsTerminal(writer) {
			output = console(writer)
		}
	case FormatConsole:
		output = console(writer)
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", opts.Format)
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

func console(w io.Writer) io.Writer {
	cw := zerolog.NewConsoleWriter()
	cw.Out = w
	cw.TimeFormat = time.Kitchen
	cw.NoColor = !IsTerminal(w)
	return cw
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Component returns a child logger tagged with a component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
