package stream

import (
	"context"
	"time"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/provider"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/stream"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/symbol"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/config"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/util"
)

// Service runs one live-price session per connection. Sessions share no
// state: each Run call owns its error counters.
type Service struct {
	provider provider.MarketData
	sleeper  util.Sleeper
	logger   logger.Interface
	config   config.StreamConfig
	now      func() time.Time
}

// NewService creates a new stream usecase.
func NewService(
	marketData provider.MarketData,
	sleeper util.Sleeper,
	log logger.Interface,
	cfg config.StreamConfig,
) *Service {
	return &Service{
		provider: marketData,
		sleeper:  sleeper,
		logger:   log,
		config:   cfg,
		now:      time.Now,
	}
}

// Run polls quotes for rawSymbol and pushes ticks into sink until the peer
// disconnects (ctx cancellation) or the consecutive-error ceiling is hit,
// in which case exactly one terminal error event is emitted.
func (s *Service) Run(ctx context.Context, rawSymbol string, sink stream.Sink) error {
	resolved, err := symbol.Resolve(rawSymbol)
	if err != nil {
		return err
	}

	session := session{
		service:  s,
		symbol:   resolved,
		sink:     sink,
		interval: newBackoff(s.config),
	}

	return session.run(ctx)
}

// session is the per-connection state machine.
type session struct {
	service  *Service
	symbol   string
	sink     stream.Sink
	interval backoff

	errorCount int
	quietPolls int
}

func (s *session) run(ctx context.Context) error {
	for {
		// Peer disconnect is checked at the top of each cycle, never
		// mid-call.
		if ctx.Err() != nil {
			return nil
		}

		quote, err := s.service.provider.FetchQuote(ctx, s.symbol)
		if err != nil {
			stop, err := s.onPollError(ctx, err)
			if stop {
				return err
			}
			continue
		}

		if price, ok := quote.Price(); ok {
			tick := ohlc.NewTick(s.symbol, price, quote.RegularMarketVolume, s.service.now())
			if err := s.sink.Tick(tick); err != nil {
				// The transport reports the peer gone; exit cleanly.
				return nil
			}
			s.errorCount = 0
			s.quietPolls = 0
		} else {
			s.onQuietPoll(ctx)
			if s.errorCount >= s.service.config.MaxErrors {
				return s.terminate()
			}
		}

		if err := s.service.sleeper.Sleep(ctx, s.interval.poll(s.errorCount)); err != nil {
			return nil
		}
	}
}

// onPollError advances the failure state: the session terminates at the
// ceiling, otherwise it waits the short retry delay and re-attempts
// without touching the steady poll cadence.
func (s *session) onPollError(ctx context.Context, cause error) (bool, error) {
	s.errorCount++
	s.service.logger.WarnContext(ctx, "stream poll failed",
		logger.Field{Key: "symbol", Value: s.symbol},
		logger.Field{Key: "attempt", Value: s.errorCount},
		logger.Field{Key: "max_errors", Value: s.service.config.MaxErrors},
		logger.Field{Key: "error", Value: cause.Error()})

	if s.errorCount >= s.service.config.MaxErrors {
		return true, s.terminate()
	}

	if err := s.service.sleeper.Sleep(ctx, s.interval.retry(s.errorCount)); err != nil {
		return true, nil
	}

	return false, nil
}

// onQuietPoll records a poll that returned neither a price nor an error.
// Enough consecutive quiet polls count as one provider failure so a dead
// symbol cannot hold a session open forever.
func (s *session) onQuietPoll(ctx context.Context) {
	s.quietPolls++
	s.service.logger.WarnContext(ctx, "no valid price data",
		logger.Field{Key: "symbol", Value: s.symbol},
		logger.Field{Key: "quiet_polls", Value: s.quietPolls})

	limit := s.service.config.QuietPollLimit
	if limit > 0 && s.quietPolls >= limit {
		s.quietPolls = 0
		s.errorCount++
	}
}

// terminate emits the single terminal error event.
func (s *session) terminate() error {
	event := stream.ErrorEvent{
		Error:       "Maximum error count reached",
		Symbol:      s.symbol,
		TimestampMS: s.service.now().UnixMilli(),
	}
	s.service.logger.Warn("stream terminated at error ceiling",
		logger.Field{Key: "symbol", Value: s.symbol})

	_ = s.sink.Fail(event)
	return nil
}

// backoff computes the two delay families of a session: the steady poll
// cadence (exponential in the error count) and the short retry delay
// (linear in the error count).
type backoff struct {
	base      time.Duration
	pollCap   time.Duration
	retryStep time.Duration
	retryCap  time.Duration
}

func newBackoff(cfg config.StreamConfig) backoff {
	return backoff{
		base:      cfg.BasePollInterval,
		pollCap:   cfg.MaxPollInterval,
		retryStep: cfg.RetryDelayStep,
		retryCap:  cfg.MaxRetryDelay,
	}
}

// poll returns min(base * 2^errorCount, pollCap).
func (b backoff) poll(errorCount int) time.Duration {
	d := b.base
	for i := 0; i < errorCount; i++ {
		d *= 2
		if d >= b.pollCap {
			return b.pollCap
		}
	}
	if d > b.pollCap {
		return b.pollCap
	}
	return d
}

// retry returns min(retryStep * errorCount, retryCap).
func (b backoff) retry(errorCount int) time.Duration {
	d := b.retryStep * time.Duration(errorCount)
	if d > b.retryCap {
		return b.retryCap
	}
	return d
}
