package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gonuts/flag"

	"github.com/katalvlaran/bestfirst/internal/logging"
	"github.com/katalvlaran/bestfirst/internal/metrics"
	"github.com/katalvlaran/bestfirst/search"
)

// flags shared by every command
var (
	verbose       bool
	jsonLogs      bool
	metricsPath   string
	maxExpansions int
)

func addGlobalFlags(fs *flag.FlagSet) {
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.BoolVar(&jsonLogs, "json", false, "log JSON records instead of text")
	fs.StringVar(&metricsPath, "metrics", "", "write Prometheus text metrics to this file on exit")
	fs.IntVar(&maxExpansions, "max-expansions", 0, "abort a search after this many expansions (0 = unlimited)")
}

// session carries the logger, metrics and cancellation of one command run.
type session struct {
	ctx     context.Context
	stop    context.CancelFunc
	log     *logging.Logger
	metrics *metrics.Collector
}

func newSession(domain string) *session {
	var l *logging.Logger
	if jsonLogs {
		l = logging.NewJSONLogger(stderr, logging.Level(verbose))
	} else {
		l = logging.NewTextLogger(stderr, logging.Level(verbose))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	return &session{
		ctx:     ctx,
		stop:    stop,
		log:     l.WithDomain(domain),
		metrics: metrics.New(""),
	}
}

// options returns the search options every solve call of the session uses.
func (s *session) options() []search.Option {
	return []search.Option{
		search.WithContext(s.ctx),
		search.WithMaxExpansions(maxExpansions),
		search.WithObserver(s.metrics),
		search.WithLogger(s.log.Logger),
	}
}

// close releases the signal handler and flushes metrics when requested.
func (s *session) close() error {
	s.stop()
	if metricsPath == "" {
		return nil
	}
	if err := s.metrics.WriteTextfile(metricsPath); err != nil {
		return err
	}
	s.log.Debug("metrics written", slog.String("path", metricsPath))

	return nil
}
