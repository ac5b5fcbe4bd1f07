package bootstrap

import (
	"github.com/Joseph25Rejo/quarks-inngest/internal/infrastructure/yahoo"
)

// registerProvider wires the upstream market-data client.
func (b *Bootstrap) registerProvider() {
	b.Provider = yahoo.NewClient(b.Config.Yahoo, b.Logger)
}
