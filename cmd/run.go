package cmd

import (
	"context"
	"fmt"
	"os"

	"lotto/config"
	"lotto/console"
	"lotto/domain/interfaces"
	"lotto/domain/services"
	"lotto/events"
	"lotto/infrastructure"

	log "github.com/sirupsen/logrus"
)

// Run initializes and plays one draw on the terminal
func Run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogging(cfg)

	log.WithField("environment", cfg.Environment).Debug("Starting lotto...")

	// Initialize random source
	randomSource := newRandomSource(cfg)

	// Initialize event bus
	eventBus := events.NewBus()
	subscribeAuditLog(eventBus)

	// Initialize event publisher, NATS is optional
	var publisher interfaces.EventPublisher = eventBus
	if cfg.IsNATSEnabled() {
		natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
		if err := natsClient.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer func() {
			if err := natsClient.Close(); err != nil {
				log.WithError(err).Warn("Error closing NATS connection")
			}
		}()

		mapper := infrastructure.NewEventSubjectMapper()
		if err := infrastructure.EnsureEventStream(natsClient, mapper); err != nil {
			return fmt.Errorf("failed to ensure event stream: %w", err)
		}
		publisher = infrastructure.NewNATSEventPublisher(natsClient, mapper, eventBus)
		log.WithField("servers", cfg.NATSServers).Debug("Publishing draw events to NATS")
	}

	// Initialize services
	lotteryService := services.NewLotteryService(randomSource, publisher, cfg.MaxTickets)

	app := console.NewApp(lotteryService, os.Stdin, os.Stdout, cfg.RetryOnError)
	return app.Run(ctx)
}

func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, using warn")
		level = log.WarnLevel
	}
	log.SetLevel(level)
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

func newRandomSource(cfg *config.Config) interfaces.RandomSource {
	if cfg.RandomSeed != nil {
		log.WithField("seed", *cfg.RandomSeed).Info("Using seeded random source")
		return infrastructure.NewSeededRandomSource(*cfg.RandomSeed)
	}
	return infrastructure.NewCryptoRandomSource()
}

func subscribeAuditLog(bus *events.Bus) {
	bus.Subscribe(events.EventTypeTicketsPurchased, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.TicketsPurchasedEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"runID":       e.RunID,
			"ticketCount": e.TicketCount,
		}).Debug("Event: tickets purchased")
	})
	bus.Subscribe(events.EventTypeDrawSettled, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.DrawSettledEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"runID":         e.RunID,
			"totalWinnings": e.TotalWinnings,
			"profitRate":    e.ProfitRate,
		}).Debug("Event: draw settled")
	})
}
