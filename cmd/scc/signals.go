package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

// interruptContext is cancelled by the first of sigs. The game only notices between
// rounds, so the handler is released at once and a second signal kills the process.
func interruptContext(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, sigs...)

	go func() {
		<-ctx.Done()
		stop()
		if parent.Err() == nil {
			log.Println("Interrupted: stopping after this round, interrupt again to quit now")
		}
	}()

	return ctx, stop
}
