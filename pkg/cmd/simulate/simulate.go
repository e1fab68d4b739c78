package simulate

import (
	"context"
	"fmt"
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

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Records one driving session interactively",
		Long: `Asks for driver, track and vehicle on the console, simulates the
lap times and writes the session report file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&config.ReportFile,
		"report", "report.txt", "path of the report file to write")
	cmd.Flags().Int64Var(&config.Seed,
		"seed", 0, "seed for the lap time generator (0 means time based)")
	return cmd
}

//nolint:funlen // by design
func runSimulation(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := log.GetFromContext(ctx).Named("simulate")
	runKey := uuid.New().String()

	if config.EnableTelemetry {
		telemetry, err := config.SetupTelemetry(ctx)
		if err != nil {
			logger.Warn("could not setup telemetry", log.ErrorField(err))
		} else {
			defer telemetry.Shutdown()
		}
	}
	_, span := config.Tracer().Start(ctx, "simulate")
	span.SetAttributes(attribute.String("runKey", runKey))
	defer span.End()

	fmt.Fprint(out, "========================================\n")
	fmt.Fprint(out, "     Welcome to Motorsports Simulator\n")
	fmt.Fprint(out, "========================================\n\n")

	sess, err := sim.CollectSession(in, out)
	if err != nil {
		return fmt.Errorf("collect session data: %w", err)
	}

	genOpts := []sim.Option{}
	if config.Seed != 0 {
		genOpts = append(genOpts, sim.WithSeed(config.Seed))
	}
	gen := sim.NewLapTimeGenerator(genOpts...)
	sess.LapTimes = gen.LapTimes(sess.Vehicle)
	logger.Debug("lap times generated",
		log.String("runKey", runKey),
		log.String("vehicle", sess.Vehicle.String()),
		log.Float("base", sess.Vehicle.BaseLapTime()))

	store := session.NewStore()
	if !store.AddSession(sess) {
		logger.Warn("session log is full, session not stored",
			log.Int("capacity", session.MaxSessions))
	}

	fmt.Fprint(out, "\nLap Times:\n")
	for i, lapTime := range sess.LapTimes {
		fmt.Fprintf(out, "Lap %d: %.2f seconds\n", i+1, lapTime)
	}
	fmt.Fprintf(out, "\nAverage Lap Time: %.2f seconds\n", sess.AverageLap())
	fmt.Fprintf(out, "Overall Average: %.2f seconds\n", store.OverallAverage())

	if err := report.WriteFile(config.ReportFile, report.NewRow(sess)); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nReport saved to %s\n", config.ReportFile)

	logger.Info("session recorded",
		log.String("runKey", runKey),
		log.String("driver", sess.Driver),
		log.String("track", sess.Track),
		log.String("vehicle", sess.Vehicle.String()),
		log.Float("avgLap", sess.AverageLap()),
		log.String("report", config.ReportFile))
	return nil
}
