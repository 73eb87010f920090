package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pidboard/pkg/board"
	"pidboard/pkg/dlog"
	"pidboard/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the live departure board in your terminal",
	Long:  "Fetches the departure board once immediately and then every 5 seconds, redrawing the terminal each time. Use --once to print a single board and exit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		once, _ := cmd.Flags().GetBool("once")

		if once {
			return printBoardOnce(cmd.Context())
		}
		return watchBoard(cmd.Context())
	},
}

func watchBoard(parent context.Context) error {
	// Log lines would be wiped by the next frame
	logger := dlog.Discard()

	opts, client, err := loadBoard(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := tui.NewTerminalSink(os.Stdout, opts.StopName, opts.Location, true)
	driver := board.NewDriver(client, sink, opts, logger)

	return board.NewScheduler(driver, logger).Run(ctx)
}

func printBoardOnce(ctx context.Context) error {
	logger := dlog.New(dlog.WithPrefix("pidboard: "))

	opts, client, err := loadBoard(logger)
	if err != nil {
		return err
	}

	rec := &board.Recorder{}
	driver := board.NewDriver(client, rec, opts, dlog.Discard())

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching live departures for %s...", opts.StopName)).
		Action(func() {
			// The failure is already recorded as an error frame
			_ = board.NewScheduler(driver, logger).Once(ctx)
		}).
		Run()

	rec.Replay(tui.NewTerminalSink(os.Stdout, opts.StopName, opts.Location, false))
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().BoolP("once", "1", false, "Print the board a single time instead of refreshing every 5 seconds")
}
