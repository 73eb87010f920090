package board

import (
	"context"
	"time"

	"pidboard/pkg/dlog"
	"pidboard/pkg/golemio"

	"github.com/pkg/errors"
)

// Fetcher loads the raw departure board for a stop. *golemio.Client
// satisfies it.
type Fetcher interface {
	FetchBoard(ctx context.Context, stopID string, limit int) (*golemio.BoardResponse, error)
}

// Sink is a render surface. Every call replaces what the sink showed
// before; nothing is patched incrementally. Sinks without an info-text area
// may ignore RenderInfoTexts.
type Sink interface {
	RenderInfoTexts(lines []string)
	RenderBoard(b Board)
	RenderError(message string)
}

// Options describe the one stop a Driver shows.
type Options struct {
	StopID          string
	StopName        string
	Limit           int
	TimestampFormat golemio.TimestampFormat
	Location        *time.Location
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return golemio.DefaultLimit
	}
	return o.Limit
}

// Driver performs one fetch-format-render cycle per Refresh call.
type Driver struct {
	fetcher Fetcher
	sink    Sink
	opts    Options
	logger  *dlog.Logger
	now     func() time.Time
}

func NewDriver(fetcher Fetcher, sink Sink, opts Options, logger *dlog.Logger) *Driver {
	if logger == nil {
		logger = dlog.Discard()
	}
	return &Driver{
		fetcher: fetcher,
		sink:    sink,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
	}
}

// ErrorMessage is the text shown in place of the board after a failure.
func ErrorMessage(err error) string {
	return "Failed to load departures. Error: " + err.Error()
}

// Refresh fetches the board and renders it. Any failure is rendered as an
// error message on the sink before being returned, so callers only need the
// error for logging.
func (d *Driver) Refresh(ctx context.Context) error {
	d.logger.Debugf("refreshing departures for %s", d.opts.StopID)

	resp, err := d.fetcher.FetchBoard(ctx, d.opts.StopID, d.opts.limit())
	if err != nil {
		return d.fail(err)
	}
	if resp == nil {
		resp = &golemio.BoardResponse{}
	}

	now := d.now()
	rows := make([]Row, 0, len(resp.Departures))
	for _, dep := range resp.Departures {
		row, err := FormatDeparture(dep, now, d.opts.TimestampFormat, d.opts.Location)
		if err != nil {
			return d.fail(err)
		}
		rows = append(rows, row)
	}

	d.sink.RenderInfoTexts(InfoTextLines(resp.InfoTexts))
	d.sink.RenderBoard(Board{
		StopName:  d.opts.StopName,
		Rows:      rows,
		UpdatedAt: now,
	})

	d.logger.Debugf("rendered %d departures", len(rows))
	return nil
}

func (d *Driver) fail(err error) error {
	d.logger.Printf("Error fetching departure data: %v", err)
	d.sink.RenderError(ErrorMessage(err))
	return errors.Wrap(err, "refresh departure board")
}
