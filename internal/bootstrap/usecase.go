package bootstrap

import (
	historyUsecase "github.com/Joseph25Rejo/quarks-inngest/internal/usecase/history"
	streamUsecase "github.com/Joseph25Rejo/quarks-inngest/internal/usecase/stream"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/util"
)

// registerUsecase wires the two pipelines over the shared provider.
func (b *Bootstrap) registerUsecase() {
	sleeper := util.TimerSleeper{}

	b.History = historyUsecase.NewService(b.Provider, b.Cache, sleeper, b.Logger, b.Config.History)
	b.Stream = streamUsecase.NewService(b.Provider, sleeper, b.Logger, b.Config.Stream)
}
