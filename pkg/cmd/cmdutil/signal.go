package cmdutil

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

// SignalContext returns a context that is cancelled when one of the signals
// arrives.
func SignalContext(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, signals...)

	go func() {
		defer signal.Stop(sigC)

		select {
		case sig := <-sigC:
			log.Warnf("%v", sig)
			cancel()

		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
