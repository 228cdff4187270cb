package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"inventoryservice/pkg/app/config"
	"inventoryservice/pkg/domain/service"
	"inventoryservice/pkg/infrastructure/auth"
	"inventoryservice/pkg/infrastructure/event"
	"inventoryservice/pkg/infrastructure/mysql"
	redisinfra "inventoryservice/pkg/infrastructure/redis"
	"inventoryservice/transport"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:           "inventoryservice",
		Usage:          "inventory management web service",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: runMigrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("application terminated")
	}
}

func runMigrate(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := mysql.Migrate(cfg.DatabaseDSN); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

func runServe(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := mysql.Migrate(cfg.DatabaseDSN); err != nil {
		return err
	}

	db, err := mysql.Connect(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := cfg.Redis.New()
	if err != nil {
		return err
	}
	defer redisClient.Close()

	dispatcher := event.NewLogDispatcher()
	products := service.NewProductService(mysql.NewProductRepository(db), dispatcher)
	authService := service.NewAuthService(mysql.NewUserRepository(db), auth.NewBcryptPasswordManager(), dispatcher)
	sessions := redisinfra.NewSessionStore(redisClient, cfg.SessionTTL)

	renderer, err := transport.NewHTMLRenderer()
	if err != nil {
		return err
	}

	router := transport.NewRouter(products, authService, sessions, cfg.SessionSecret, renderer)
	srv := &http.Server{Addr: cfg.ListenAddr(), Handler: router}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
