package bootstrap

import (
	"github.com/Joseph25Rejo/quarks-inngest/internal/handler"
)

// registerHandler wires the HTTP surface.
func (b *Bootstrap) registerHandler() {
	b.Handler = handler.NewServer(b.Logger, b.Config.App, b.History, b.Stream)
}
