package cmd

import (
	"fmt"
	"os"

	"pidboard/pkg/board"
	"pidboard/pkg/config"
	"pidboard/pkg/dlog"
	"pidboard/pkg/golemio"
	"pidboard/pkg/tui"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pidboard",
	Short: "A live PID departure board for your stop",
	Long: `pidboard polls the Golemio departure-board API for one Prague public
transport stop every 5 seconds and shows the next departures in your
terminal or on a small self-refreshing web page.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(tui.Error(err.Error()))
		os.Exit(1)
	}
}

// loadBoard reads the saved config and builds what every board command needs.
func loadBoard(logger *dlog.Logger) (board.Options, *golemio.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return board.Options{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return board.Options{}, nil, err
	}

	tui.SetAccent(cfg.AccentColor)

	opts, err := cfg.BoardOptions()
	if err != nil {
		return board.Options{}, nil, err
	}

	client := golemio.NewClient(cfg.APIKey,
		golemio.WithBaseURL(cfg.BaseURL),
		golemio.WithLogger(logger),
	)
	return opts, client, nil
}
