package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

var (
	flagSimTicks  int
	flagAutopilot bool
	flagRuns      int
	flagFrame     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a terminal and log a summary.

Without --autopilot the runner never jumps, which is handy for
checking spawn timing. With --autopilot a simple controller jumps
over cacti and low birds and ducks under the middle band.

Each run restarts the same session, so runs continue the seeded
random sequence instead of repeating it.

Examples:
  runner sim --seed 42
  runner sim --ticks 100000 --autopilot
  runner sim --runs 10 --autopilot --difficulty hard
  runner sim --seed 7 --frame            # print the final frame`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum ticks per run")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot play")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the last frame of each run as text")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := resolveSeed()
	session, err := runner.NewSession(cfg, seed)
	if err != nil {
		return err
	}

	var pilot *runner.Autopilot
	if flagAutopilot {
		pilot = runner.NewAutopilot(cfg)
	}

	logger.Info("simulating", "seed", seed, "runs", flagRuns, "ticks", flagSimTicks, "autopilot", flagAutopilot)

	for run := 1; run <= max(flagRuns, 1); run++ {
		// Restart only works after a crash; a run that outlasted --ticks ends the batch.
		if run > 1 && !session.Restart() {
			logger.Warn("previous run did not crash, stopping", "run", run)
			break
		}

		spawned, ticks := 0, 0
		var res runner.StepResult
		for ticks < flagSimTicks {
			in := core.Intents{}
			if pilot != nil {
				in = pilot.Next(session.Snapshot())
			}
			res = session.Step(in)
			ticks++
			if res.Spawned {
				spawned++
			}
			if res.Crashed {
				logger.Debug("crashed", "run", run, "tick", ticks, "score", res.World.Score)
				break
			}
		}

		logger.Info("run finished",
			"run", run,
			"ticks", ticks,
			"score", res.World.Score,
			"speed", res.World.Speed,
			"spawned", spawned,
			"crashed", res.Crashed,
		)
		if flagFrame {
			fmt.Println(tui.RenderFrame(cfg, session.Snapshot(), 100, 25))
		}
	}

	logger.Info("done", "best", session.Snapshot().Best)
	return nil
}
