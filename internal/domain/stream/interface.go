package stream

import (
	"context"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
)

//go:generate mockgen -source=interface.go -destination=mock/stream_mock.go -package=mock

// Usecase is the interface for the live stream controller. Run blocks until
// the peer disconnects (ctx cancellation) or the error ceiling is reached.
type Usecase interface {
	Run(ctx context.Context, rawSymbol string, sink Sink) error
}

// Sink receives stream events. Tick is called once per successful poll;
// Fail is called at most once, as the terminal event.
type Sink interface {
	Tick(tick ohlc.Tick) error
	Fail(event ErrorEvent) error
}

// ErrorEvent is the terminal stream failure payload.
type ErrorEvent struct {
	Error       string `json:"error"`
	Symbol      string `json:"symbol"`
	TimestampMS int64  `json:"timestamp"`
}
