package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lexibot/bot/quiz"
	"lexibot/bot/service"
	"lexibot/bot/storage"
	bottelegram "lexibot/bot/telegram"
	"lexibot/core/bootstrap"
	coretelegram "lexibot/core/telegram"
)

// App holds the wired application.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	registry *coretelegram.Registry
	handlers *bottelegram.Handlers
	engine   *quiz.Engine
}

// Bootstrap initializes logging, storage, migrations, seed data, and all
// services of the bot.
func Bootstrap(ctx context.Context, cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config provided")
	}

	res, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
		Seeders: []bootstrap.Seeder{
			bootstrap.SeederFunc(storage.SeedWords),
		},
	})
	if err != nil {
		return nil, err
	}

	store := storage.NewStore(res.DB)
	users := service.NewUsers(store)
	vocab := service.NewVocab(store)
	quizSvc := service.NewQuiz(store, cfg.Quiz.OptionCount)

	engine := quiz.NewEngine(quizSvc, vocab, quiz.NewSessions(), cfg.Quiz.MaxAttempts)
	handlers := bottelegram.NewHandlers(users, vocab, engine)

	return &App{
		cfg:      cfg,
		db:       res.DB,
		registry: bottelegram.BuildRegistry(handlers),
		handlers: handlers,
		engine:   engine,
	}, nil
}

// TelegramRunOptions builds the bot runtime configuration.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	routes := bottelegram.BuildRoutes(a.registry, a.handlers, a.engine, a.cfg.Telegram.AdminID)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    a.registry,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnError:     bottelegram.OnError,
		OnStop: func(_ context.Context, _ coretelegram.Runtime) error {
			return a.db.Close()
		},
	}, nil
}
