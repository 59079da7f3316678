package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/nikmy/meowcal/internal/api"
	"github.com/nikmy/meowcal/internal/render"
	"github.com/nikmy/meowcal/internal/session"
	"github.com/nikmy/meowcal/internal/telegram"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/environment"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// secrets may live in .env, it is fine to have none
	_ = godotenv.Load()

	var env environment.Env

	app := &cli.App{
		Name:  "meowcal",
		Usage: "calendar widget served over HTTP, Telegram and the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to yaml config",
			},
			&cli.GenericFlag{
				Name:  "env",
				Value: &env,
				Usage: "environment (dev, prod), overrides config",
			},
		},
		Commands: []*cli.Command{
			serveCommand(&env),
			botCommand(&env),
			gridCommand(&env),
		},
	}

	if err := app.Run(os.Args); err != nil {
		stdlog.Fatal(err)
	}
}

type deps struct {
	cfg     *Config
	log     logger.Logger
	setters []calendar.Setter
}

func setup(c *cli.Context, env *environment.Env) (*deps, error) {
	cfg, err := loadConfig(c.String("config"), env)
	if err != nil {
		return nil, errors.WrapFail(err, "load config")
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		return nil, errors.WrapFail(err, "init logger")
	}

	setters, err := widgetSetters(cfg, log)
	if err != nil {
		return nil, err
	}

	return &deps{cfg: cfg, log: log, setters: setters}, nil
}

func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
}

func serveCommand(env *environment.Env) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve calendar pages over HTTP",
		Action: func(c *cli.Context) error {
			a, err := setup(c, env)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(c.Context)
			defer cancel()

			store := session.NewStore(a.cfg.HTTP.Session, api.WidgetFactory(a.setters, a.log), a.log)
			go func() {
				if err := store.Run(ctx); err != nil {
					a.log.Error(errors.WrapFail(err, "run session sweeper"))
				}
			}()

			renderer, err := render.New(api.BasePath)
			if err != nil {
				a.log.Panic(errors.WrapFail(err, "init renderer"))
			}

			srv := api.NewServer(a.cfg.HTTP, a.log, store, renderer)
			a.log.Infof("listening on %s", a.cfg.HTTP.HTTP.Addr)

			serveErr := srv.Serve(ctx)

			stdlog.Println("Graceful shutdown...")
			shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stop()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.log.Warn(err)
			}
			stdlog.Println("Shutdown complete")

			return serveErr
		},
	}
}

func botCommand(env *environment.Env) *cli.Command {
	return &cli.Command{
		Name:  "bot",
		Usage: "run the Telegram bot",
		Action: func(c *cli.Context) error {
			a, err := setup(c, env)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(c.Context)
			defer cancel()

			bot, err := telegram.New(a.log, a.cfg.Telegram, a.setters)
			if err != nil {
				a.log.Panic(errors.WrapFail(err, "initialize bot service"))
			}

			err = bot.Run(ctx)
			if err != nil {
				a.log.Panic(err)
			}
			stdlog.Println("Bot has been started")

			<-ctx.Done()

			stdlog.Println("Graceful shutdown...")
			bot.Stop()
			stdlog.Println("Shutdown complete")
			return nil
		},
	}
}

func gridCommand(env *environment.Env) *cli.Command {
	return &cli.Command{
		Name:  "grid",
		Usage: "print a calendar grid",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "anchor date, YYYY-MM-DD (default today)"},
			&cli.StringFlag{Name: "mode", Value: calendar.MonthView.String(), Usage: "month or week"},
			&cli.StringFlag{Name: "lang", Usage: "locale language, overrides config"},
		},
		Action: func(c *cli.Context) error {
			a, err := setup(c, env)
			if err != nil {
				return err
			}

			mode, err := calendar.ParseViewMode(c.String("mode"))
			if err != nil {
				return err
			}

			setters := append(a.setters, calendar.AsViewMode(mode))
			if lang := c.String("lang"); lang != "" {
				setters = append(setters, calendar.AsLanguage(lang))
			}

			w, err := calendar.NewWidget(setters...)
			if err != nil {
				return errors.WrapFail(err, "build widget")
			}

			if raw := c.String("date"); raw != "" {
				anchor, err := w.ParseDate(raw)
				if err != nil {
					return err
				}

				w, err = calendar.NewWidget(append(setters, calendar.AsAnchor(anchor))...)
				if err != nil {
					return errors.WrapFail(err, "build widget")
				}
			}

			return render.Text(os.Stdout, w.View())
		},
	}
}
