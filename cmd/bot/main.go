package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/doshicc/sirius-bot/internal/config"
	"github.com/doshicc/sirius-bot/internal/janitor"
	"github.com/doshicc/sirius-bot/internal/repository/postgres"
	"github.com/doshicc/sirius-bot/internal/scheduler"
	"github.com/doshicc/sirius-bot/internal/usecase"
	"github.com/doshicc/sirius-bot/transport/telegram"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()
	if cfg.Token == "" {
		log.Fatal("TOKEN is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(cfg.DatabaseDSN); err != nil {
		log.Fatal(err)
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	eventRepo := postgres.NewEventRepository(pool)
	sched := scheduler.New(cfg.PollInterval)
	reminderUC := usecase.NewReminderUsecase(eventRepo, sched)

	tgBot := telegram.NewBot(reminderUC)
	client, err := bot.New(cfg.Token, bot.WithDefaultHandler(tgBot.DefaultHandler))
	if err != nil {
		log.Fatal(err)
	}
	tgBot.AddClient(client)
	tgBot.RegisterHandlers()
	sched.OnFire(tgBot.SendReminder)

	reminderUC.Rehydrate(ctx)

	go sched.Run(ctx)
	go janitor.New(reminderUC, cfg.SweepInterval).Run(ctx)

	slog.Info("bot started")
	tgBot.Start(ctx)

	slog.Info("bot stopped", "store_faults", reminderUC.StoreFaults())
}
