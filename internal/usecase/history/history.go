package history

import (
	"context"
	"fmt"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/history"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/provider"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/symbol"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/config"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/errors"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/interval"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/util"
	"golang.org/x/sync/singleflight"
)

// Service is the usecase for historical bundles: it memoizes one
// multi-resolution fetch per resolved symbol.
type Service struct {
	provider provider.MarketData
	cache    history.BundleCache
	sleeper  util.Sleeper
	logger   logger.Interface
	config   config.HistoryConfig

	flight singleflight.Group
}

// NewService creates a new history usecase.
func NewService(
	marketData provider.MarketData,
	cache history.BundleCache,
	sleeper util.Sleeper,
	log logger.Interface,
	cfg config.HistoryConfig,
) *Service {
	return &Service{
		provider: marketData,
		cache:    cache,
		sleeper:  sleeper,
		logger:   log,
		config:   cfg,
	}
}

// GetHistorical returns the multi-resolution bundle for a raw ticker,
// serving from cache when possible. Concurrent cold-cache requests for the
// same symbol share one upstream fetch.
func (s *Service) GetHistorical(ctx context.Context, rawSymbol string) (ohlc.Bundle, error) {
	resolved, err := symbol.Resolve(rawSymbol)
	if err != nil {
		return nil, err
	}

	if bundle, found, err := s.cache.Get(ctx, resolved); err == nil && found {
		s.logger.InfoContext(ctx, "returning cached historical data",
			logger.Field{Key: "symbol", Value: resolved})
		return bundle, nil
	} else if err != nil {
		s.logger.WarnContext(ctx, "bundle cache lookup failed",
			logger.Field{Key: "symbol", Value: resolved},
			logger.Field{Key: "error", Value: err.Error()})
	}

	result, err, _ := s.flight.Do(resolved, func() (interface{}, error) {
		// Another flight may have populated the cache while this caller
		// waited on the singleflight lock.
		if bundle, found, err := s.cache.Get(ctx, resolved); err == nil && found {
			return bundle, nil
		}

		return s.fetchBundle(ctx, resolved)
	})
	if err != nil {
		return nil, err
	}

	return result.(ohlc.Bundle), nil
}

// Invalidate drops any cached bundle for a raw ticker.
func (s *Service) Invalidate(ctx context.Context, rawSymbol string) error {
	resolved, err := symbol.Resolve(rawSymbol)
	if err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, resolved)
}

// fetchBundle assembles one bundle from the five fixed resolutions in
// order, pacing between provider calls. A failed or empty resolution
// degrades to an empty sequence rather than aborting the bundle.
func (s *Service) fetchBundle(ctx context.Context, resolved string) (ohlc.Bundle, error) {
	s.logger.InfoContext(ctx, "fetching historical data",
		logger.Field{Key: "symbol", Value: resolved})

	resolutions := interval.Ordered()
	bundle := make(ohlc.Bundle, len(resolutions))

	for i, resolution := range resolutions {
		records := s.fetchResolution(ctx, resolved, resolution)
		bundle[resolution.Name] = records

		if err := ctx.Err(); err != nil {
			return nil, s.upstreamFailure(resolved, err)
		}

		// Pacing delay between provider calls, skipped after the last.
		if i < len(resolutions)-1 {
			if err := s.sleeper.Sleep(ctx, s.config.PacingDelay); err != nil {
				return nil, s.upstreamFailure(resolved, err)
			}
		}
	}

	if err := s.cache.Set(ctx, resolved, bundle); err != nil {
		return nil, s.upstreamFailure(resolved, err)
	}

	s.logger.InfoContext(ctx, "cached historical data",
		logger.Field{Key: "symbol", Value: resolved})

	return bundle, nil
}

// fetchResolution fetches and normalizes one resolution. Failures degrade
// to an empty sequence so partial data stays available.
func (s *Service) fetchResolution(ctx context.Context, resolved string, resolution interval.Resolution) []ohlc.Record {
	rows, err := s.provider.FetchSeries(ctx, resolved, resolution.Period, resolution.Interval)
	if err != nil {
		s.logger.WarnContext(ctx, "resolution fetch failed",
			logger.Field{Key: "symbol", Value: resolved},
			logger.Field{Key: "resolution", Value: resolution.Name},
			logger.Field{Key: "error", Value: err.Error()})
		return []ohlc.Record{}
	}

	return ohlc.Normalize(rows, nil)
}

func (s *Service) upstreamFailure(resolved string, cause error) error {
	details := errors.NewErrorDetails(
		fmt.Sprintf("historical fetch failed for %s: %v", resolved, cause),
		string(errors.UpstreamFetchError), "symbol")
	return errors.NewTracer(details.Message).Wrap(details)
}
