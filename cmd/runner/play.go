package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up   - Jump (hold for a full jump, release early for a short hop)
  Down       - Duck
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so a key counts as held
until --hold ticks pass without a repeat. With the default of 18
ticks a single tap already gives a full jump; lower --hold (e.g. 4)
to make short hops reachable, at the cost of jumps dropping if your
terminal's key repeat starts late.

Difficulty options:
  easy   - Slower start, gentler ramp
  normal - Default speeds
  hard   - Faster start, steeper ramp
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42 --fps 30
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a key counts as held after its last press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := resolveSeed()
	logger.Debug("starting run", "seed", seed, "fps", flagFPS, "width", width, "height", height)

	return tui.Run(tui.Options{
		Config:    cfg,
		Seed:      seed,
		TickRate:  flagFPS,
		HoldTicks: flagHoldTicks,
		Width:     width,
		Height:    height,
	})
}
