package history

import (
	"context"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
)

//go:generate mockgen -source=interface.go -destination=mock/history_mock.go -package=mock

// Usecase is the interface for the historical aggregator.
type Usecase interface {
	GetHistorical(ctx context.Context, rawSymbol string) (ohlc.Bundle, error)
	Invalidate(ctx context.Context, rawSymbol string) error
}

// BundleCache memoizes assembled bundles per resolved symbol. Get reports
// found=false on a miss without error.
type BundleCache interface {
	Get(ctx context.Context, symbol string) (ohlc.Bundle, bool, error)
	Set(ctx context.Context, symbol string, bundle ohlc.Bundle) error
	Invalidate(ctx context.Context, symbol string) error
}
