package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lotto/cmd"
	"lotto/domain/entities"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Debug("Received shutdown signal, shutting down...")
		cancel()
	}()

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		// Rejected input has already been reported on stdout
		if entities.IsValidationError(err) {
			os.Exit(1)
		}
		log.Fatal("Application error: ", err)
	}
}
