package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dukerupert/signup/internal"
	"github.com/dukerupert/signup/internal/reference"
	"github.com/dukerupert/signup/internal/render"
	"github.com/dukerupert/signup/internal/schedule"
	"github.com/dukerupert/signup/internal/service"
	"github.com/dukerupert/signup/internal/sink"
	"github.com/dukerupert/signup/internal/telemetry"
)

func run(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	flags.SetOutput(out)
	referencePath := flags.String("reference", "", "YAML reference data file (overrides REFERENCE_DATA_PATH)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

	path := cfg.ReferenceDataPath
	if *referencePath != "" {
		path = *referencePath
	}
	tables, err := reference.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("reference data: %w", err)
	}
	if path != "" {
		logger.Info().Str("path", path).Int("countries", len(tables.Countries())).Msg("Reference data loaded")
	}

	registry := prometheus.NewRegistry()
	metrics := telemetry.NewRegistrationMetrics(cfg.MetricsNamespace, registry)

	session, err := service.NewSession(service.SessionDeps{
		Tables:    tables,
		Renderer:  render.NewTerminal(out),
		Sink:      sink.NewLogSink(logger),
		Scheduler: schedule.NewClock(),
		Metrics:   metrics,
		Logger:    logger,
	}, service.Timings{
		ResetDelay:        cfg.Submission.ResetDelay,
		FeedbackHideDelay: cfg.Submission.FeedbackHideDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.Close()

	c := newConsole(session, registry, out)
	fmt.Fprintln(out, "Registration form. Enter field=value, or :help.")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := c.handle(ctx, scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
