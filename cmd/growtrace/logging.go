package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

// logConfig describes configuration of the process logger.
type logConfig struct {
	// Log level name: trace, debug, info, warn, error, disabled.
	Level string

	// Path to the logfile. "stdout" or "stderr" are possible too.
	Path string

	// The size of diode buffer. 0 disables the diode.
	DiodeBuf int

	// Emit JSON lines instead of the human readable console format.
	JSON bool
}

// newLogger builds a zerolog.Logger from lc. The returned closer flushes and
// releases the output; it is never nil.
func newLogger(lc logConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("log level: %w", err)
	}

	var (
		output io.Writer
		closer io.Closer = nopCloser{}
	)
	switch lc.Path {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		f, err := os.Create(lc.Path)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		output, closer = f, f
	}

	if !lc.JSON {
		output = zerolog.ConsoleWriter{Out: output, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}

	// enable diode; the file, if any, is closed by closer, not by the diode
	if lc.DiodeBuf > 0 {
		d := diode.NewWriter(struct{ io.Writer }{output}, lc.DiodeBuf, 0, func(missed int) {
			fmt.Fprintf(os.Stderr, "WARNING: Dropped %d log entries\n", missed)
		})
		closer = chainCloser{d, closer}
		output = d
	}

	return zerolog.New(output).Level(level).With().Str("service", "growtrace").Logger(), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// chainCloser closes first, then second.
type chainCloser struct {
	first, second io.Closer
}

func (c chainCloser) Close() error {
	err := c.first.Close()
	if err2 := c.second.Close(); err == nil {
		err = err2
	}
	return err
}
