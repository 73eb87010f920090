package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pidboard/pkg/board"
	"pidboard/pkg/dlog"
	"pidboard/pkg/web"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the departure board as a web page",
	Long:  "Refreshes the departure board every 5 seconds in the background and serves it as a self-refreshing HTML page, with /board and /infotexts returning the bare fragments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		return serveBoard(cmd.Context(), addr)
	},
}

func serveBoard(parent context.Context, addr string) error {
	logger := dlog.New(dlog.WithPrefix("pidboard: "))

	opts, client, err := loadBoard(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := web.NewHTMLSink()
	driver := board.NewDriver(client, sink, opts, logger)
	scheduler := board.NewScheduler(driver, logger)

	srv := &http.Server{
		Addr:         addr,
		Handler:      web.NewServer(sink, opts.StopName, opts.Location, logger).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return scheduler.Run(ctx)
	})

	g.Go(func() error {
		logger.Printf("Serving departures for %s on %s", opts.StopName, addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
