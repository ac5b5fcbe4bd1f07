package provider

import (
	"context"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
)

//go:generate mockgen -source=interface.go -destination=mock/provider_mock.go -package=mock

// MarketData is the upstream market-data capability. FetchSeries returns
// nil rows with a nil error when the provider has no data for the request.
type MarketData interface {
	FetchSeries(ctx context.Context, symbol, period, interval string) (ohlc.Rows, error)
	FetchQuote(ctx context.Context, symbol string) (*Quote, error)
}

// Quote is one current-price snapshot. Pointer fields are nil when the
// provider omitted them.
type Quote struct {
	CurrentPrice        *float64
	RegularMarketPrice  *float64
	PreviousClose       *float64
	RegularMarketVolume int64
}

// Price returns the first present price source, in order: live price,
// regular-market price, previous close.
func (q *Quote) Price() (float64, bool) {
	for _, candidate := range []*float64{q.CurrentPrice, q.RegularMarketPrice, q.PreviousClose} {
		if candidate != nil {
			return *candidate, true
		}
	}
	return 0, false
}
