package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pidboard/pkg/board"
	"pidboard/pkg/dlog"
	"pidboard/pkg/exporter"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the upcoming departures to an ICS file",
	Long:  `Fetch the departure board once and write every upcoming departure as a calendar event.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		logger := dlog.New(dlog.WithPrefix("pidboard: "))
		opts, client, err := loadBoard(logger)
		if err != nil {
			return err
		}

		rec := &board.Recorder{}
		driver := board.NewDriver(client, rec, opts, dlog.Discard())

		var refreshErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting upcoming departures for %s to %s...", opts.StopName, output)).
			Action(func() {
				refreshErr = driver.Refresh(cmd.Context())
			}).
			Run()

		if refreshErr != nil {
			return fmt.Errorf("failed to fetch departures: %w", refreshErr)
		}

		b, ok := rec.Board()
		if !ok {
			return errors.New("no departure board was rendered")
		}
		if b.Empty() {
			return fmt.Errorf("no upcoming departures found for %s", opts.StopName)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		events, err := exporter.GenerateICS(b, time.Now(), file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d departures to %s\n", events, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "departures.ics", "Output file path")
}
