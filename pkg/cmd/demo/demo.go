package demo

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/msimtools/motorsport-session-manager-go/log"
	"github.com/msimtools/motorsport-session-manager-go/pkg/config"
	"github.com/msimtools/motorsport-session-manager-go/pkg/report"
	"github.com/msimtools/motorsport-session-manager-go/pkg/session"
	sim "github.com/msimtools/motorsport-session-manager-go/pkg/simulate"
)

var (
	count     int
	printLaps bool
	appConfig config.Config // holds processed config values
)

func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generates sample sessions and prints the session log summary",
		Long: `Fills the session log with generated sample sessions. Sessions beyond
the capacity of the log are rejected and logged. Console only, no
report file is written.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			appConfig = config.Config{PrintLaps: printLaps}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&count,
		"count", session.MaxSessions, "number of sessions to generate")
	cmd.Flags().Int64Var(&config.Seed,
		"seed", 0, "seed for the lap time generator (0 means time based)")
	cmd.Flags().BoolVar(&printLaps,
		"print-laps", false, "if true, each generated lap is logged on debug level")
	return cmd
}

func runDemo(ctx context.Context, out io.Writer) error {
	logger := log.GetFromContext(ctx).Named("demo")
	runKey := uuid.New().String()

	if config.EnableTelemetry {
		telemetry, err := config.SetupTelemetry(ctx)
		if err != nil {
			logger.Warn("could not setup telemetry", log.ErrorField(err))
		} else {
			defer telemetry.Shutdown()
		}
	}
	_, span := config.Tracer().Start(ctx, "demo")
	span.SetAttributes(
		attribute.String("runKey", runKey),
		attribute.Int("count", count))
	defer span.End()

	genOpts := []sim.Option{}
	if config.Seed != 0 {
		genOpts = append(genOpts, sim.WithSeed(config.Seed))
	}
	gen := sim.NewLapTimeGenerator(genOpts...)

	store := session.NewStore()
	for i := 0; i < count; i++ {
		sess := gen.RandomSession()
		if appConfig.PrintLaps {
			for j, lapTime := range sess.LapTimes {
				logger.Debug("generated lap",
					log.Int("session", i+1),
					log.Int("lap", j+1),
					log.Float("seconds", lapTime))
			}
		}
		if !store.AddSession(sess) {
			logger.Warn("session log is full, session rejected",
				log.Int("capacity", session.MaxSessions),
				log.String("driver", sess.Driver),
				log.String("track", sess.Track))
		}
	}

	report.RenderSummary(out, store.Sessions(), store.OverallAverage())

	logger.Info("demo finished",
		log.String("runKey", runKey),
		log.Int("generated", count),
		log.Int("stored", store.SessionCount()),
		log.Float("overallAvg", store.OverallAverage()))
	return nil
}
