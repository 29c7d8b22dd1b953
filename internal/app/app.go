package app

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/verdantly/wellspring/internal/adapters/chatbot"
	"github.com/verdantly/wellspring/internal/adapters/kv"
	"github.com/verdantly/wellspring/internal/adapters/localstore"
	"github.com/verdantly/wellspring/internal/adapters/logger"
	"github.com/verdantly/wellspring/internal/adapters/notify"
	"github.com/verdantly/wellspring/internal/adapters/otel"
	"github.com/verdantly/wellspring/internal/auth"
	"github.com/verdantly/wellspring/internal/infrastructure/config"
	"github.com/verdantly/wellspring/internal/ports"
	"github.com/verdantly/wellspring/internal/scheduler"
	"github.com/verdantly/wellspring/internal/tracker"
	"github.com/verdantly/wellspring/internal/web"
)

// Run wires the adapters together and serves until interrupted.
func Run(cfg *config.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLog := logger.NewStderrLogger(cfg.Verbose)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var store ports.KV
	if cfg.Database.URL != "" {
		turso, err := kv.NewTurso(cfg.Database.URL, cfg.Database.AuthToken)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer turso.Close()
		store = turso
	} else {
		log.Println("no database configured, using in-memory store")
		store = kv.NewMemory()
	}

	var metrics ports.MetricsExporter
	if exporter, err := otel.NewExporter(ctx, otel.LoadConfig()); err == nil {
		metrics = exporter
	} else {
		metrics = otel.NewNoOpExporter()
	}
	defer metrics.Close(context.Background())

	users := localstore.NewUserStore(store, appLog)
	sessions := localstore.NewSessionStore(store, appLog)
	reminders := localstore.NewReminderStore(store, appLog)
	recommendations := localstore.NewRecommendationStore(store, appLog)

	authSvc := auth.NewService(users, store)
	trackerSvc := tracker.NewService(sessions, users, metrics, appLog, loc)

	broker := notify.NewSSEBroker()
	notifier := notify.Multi{notify.NewLogNotifier(appLog), broker}
	sched := scheduler.New(reminders, notifier, metrics, appLog, loc, cfg.ReminderInterval)
	go sched.Run(ctx)

	var chat ports.ChatTransport
	if cfg.ChatbotURL != "" {
		chat = chatbot.NewClient(cfg.ChatbotURL)
	}

	srv := web.NewServer(
		cfg.Port,
		authSvc,
		trackerSvc,
		reminders,
		recommendations,
		chat,
		broker,
		appLog,
	)
	return srv.Start(ctx)
}
