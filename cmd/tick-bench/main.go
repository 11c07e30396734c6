package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Options is the benchmark's command line.
type Options struct {
	Duration       time.Duration
	Step           time.Duration
	Scenario       Scenario
	GCPauseMetrics bool
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	step := flag.Duration("step", time.Second/60, "Simulated time per tick.")
	players := flag.Int("players", 1, "Number of player-controlled entities.")
	obstacles := flag.Int("obstacles", 2000, "Number of colliding props placed on the map.")
	scenery := flag.Int("scenery", 2000, "Number of animated props without colliders.")
	maskSize := flag.Int("mask", 4096, "Edge length of the square collision mask.")
	blocked := flag.Float64("blocked", 0.05, "Share of mask cells that are not walkable.")
	seed := flag.Uint64("seed", 1, "Seed for the generated world and the player's wandering.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := Options{
		Duration: *duration,
		Step:     *step,
		Scenario: Scenario{
			Seed:      *seed,
			Players:   *players,
			Obstacles: *obstacles,
			Scenery:   *scenery,
			MaskSize:  *maskSize,
			Blocked:   *blocked,
		},
		GCPauseMetrics: *gcPauseMetrics,
	}
	if err := run(opts, log, os.Stdout); err != nil {
		log.WithError(err).Fatal("benchmark failed")
	}
}

func run(opts Options, log logrus.FieldLogger, out io.Writer) error {
	scenario := opts.Scenario
	if scenario.MaskSize <= 0 || scenario.MaskSize > 2*math.MaxInt16 {
		return fmt.Errorf("mask size must be in (0, %d]", 2*math.MaxInt16)
	}

	log.WithField("scenario", fmt.Sprintf("%+v", scenario)).Info("building world")
	world, err := scenario.Build(log)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	wander := NewWander(scenario.Seed)

	report := &Report{
		Duration:       opts.Duration,
		Step:           opts.Step,
		Scenario:       scenario,
		GCPauseMetrics: opts.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.WithField("duration", opts.Duration).Info("running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), opts.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			intent := wander.Next()

			updateStart := time.Now()
			world.Tick(intent, opts.Step)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Systems = world.Scheduler.GetStats().Systems
	report.Storage = world.Storage.CollectStats()

	log.WithField("ticks", totalUpdates).Info("simulation finished")

	return report.Generate(out)
}
