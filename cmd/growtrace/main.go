// Command growtrace appends integers to a list and reports every growth of
// its backing storage.
//
// Usage:
//
//	growtrace [-n 1000] [-capacity 10] [-max-capacity 0] [-json]
//	          [-log-level debug] [-log-path stderr] [-diode 0]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/pavanmanishd/collections"
)

type options struct {
	n           int
	capacity    int
	maxCapacity int
	jsonOut     bool
	log         logConfig
}

// step records one replacement of the backing storage.
type step struct {
	Len  int `json:"len"`
	From int `json:"from"`
	To   int `json:"to"`
}

type summary struct {
	Appended int                     `json:"appended"`
	Steps    []step                  `json:"steps"`
	Metrics  collections.ListMetrics `json:"metrics"`
	Error    string                  `json:"error,omitempty"`
}

func main() {
	var opts options
	flag.IntVar(&opts.n, "n", 1000, "number of values to append")
	flag.IntVar(&opts.capacity, "capacity", collections.DefaultCapacity, "initial backing capacity")
	flag.IntVar(&opts.maxCapacity, "max-capacity", 0, "maximum backing capacity (0 for no limit)")
	flag.BoolVar(&opts.jsonOut, "json", false, "print a JSON summary instead of a table")
	flag.StringVar(&opts.log.Level, "log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	flag.StringVar(&opts.log.Path, "log-path", "stderr", "log output: stdout, stderr or a file path")
	flag.IntVar(&opts.log.DiodeBuf, "diode", 0, "size of the non-blocking log buffer (0 disables it)")
	flag.BoolVar(&opts.log.JSON, "log-json", false, "log JSON lines instead of console output")
	flag.Parse()

	log, closer, err := newLogger(opts.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "growtrace: %v\n", err)
		os.Exit(2)
	}
	defer closer.Close()

	if err := run(os.Stdout, log, opts); err != nil {
		log.Error().Err(err).Msg("trace failed")
		closer.Close()
		os.Exit(1)
	}
}

// run builds the list, records its growth and writes the report to w.
// Running out of capacity is part of the report, not a failure of run.
func run(w io.Writer, log zerolog.Logger, opts options) error {
	if opts.n < 0 {
		return fmt.Errorf("%w: n must not be negative, got %d", collections.ErrInvalidArgument, opts.n)
	}
	l, err := collections.NewArrayListWithCapacity[int](opts.capacity,
		collections.WithLogger(log),
		collections.WithMaxCapacity(opts.maxCapacity),
	)
	if err != nil {
		return err
	}

	s := trace(l, opts.n)
	if s.Error != "" {
		log.Warn().Int("appended", s.Appended).Str("reason", s.Error).Msg("stopped early")
	}
	log.Info().Int("len", s.Metrics.Len).Int("capacity", s.Metrics.Capacity).Int("growths", s.Metrics.Growths).Msg("trace done")

	if opts.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return writeTable(w, s)
}

// trace appends 0..n-1 to l, recording each capacity change.
func trace(l *collections.ArrayList[int], n int) summary {
	var s summary
	for i := 0; i < n; i++ {
		before := l.Capacity()
		if err := l.Append(i); err != nil {
			s.Error = err.Error()
			break
		}
		s.Appended++
		if after := l.Capacity(); after != before {
			s.Steps = append(s.Steps, step{Len: l.Len(), From: before, To: after})
		}
	}
	s.Metrics = l.Metrics()
	return s
}

func writeTable(w io.Writer, s summary) error {
	if _, err := fmt.Fprintf(w, "%8s %10s %10s\n", "len", "from", "to"); err != nil {
		return err
	}
	for _, st := range s.Steps {
		if _, err := fmt.Fprintf(w, "%8d %10d %10d\n", st.Len, st.From, st.To); err != nil {
			return err
		}
	}
	m := s.Metrics
	_, err := fmt.Fprintf(w, "appended=%d len=%d capacity=%d growths=%d utilization=%.2f\n",
		s.Appended, m.Len, m.Capacity, m.Growths, m.Utilization)
	if err == nil && s.Error != "" {
		_, err = fmt.Fprintf(w, "stopped: %s\n", s.Error)
	}
	return err
}
