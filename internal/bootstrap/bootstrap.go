package bootstrap

import (
	"context"
	"net/http"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/history"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/provider"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/stream"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/config"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/redis"
)

// Bootstrap wires the gateway's dependencies.
type Bootstrap struct {
	Config  *config.Config
	Logger  logger.Interface
	Handler http.Handler

	Provider provider.MarketData
	Cache    history.BundleCache
	History  history.Usecase
	Stream   stream.Usecase

	redisClient redis.Client
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config *config.Config
	Logger logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(ctx context.Context, cfg BootstrapConfig) (*Bootstrap, error) {
	b.Config = cfg.Config
	b.Logger = cfg.Logger

	if err := b.registerCache(ctx); err != nil {
		return nil, err
	}
	b.registerProvider()
	b.registerUsecase()
	b.registerHandler()

	return b, nil
}

// Close releases held connections.
func (b *Bootstrap) Close(ctx context.Context) error {
	if b.redisClient != nil {
		return b.redisClient.Disconnect(ctx)
	}
	return nil
}
