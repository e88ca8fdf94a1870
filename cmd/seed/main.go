package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"examadda/config"
	"examadda/internal/infra/auth"
	logs "examadda/internal/infra/log"
	"examadda/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

func main() {
	email := flag.String("email", os.Getenv("SEED_EMAIL"), "Super admin email (defaults to $SEED_EMAIL)")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "Super admin password (defaults to $SEED_PASSWORD)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *email, *password); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, email, password string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB from gorm")
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	user, err := seedSuperAdmin(ctx, postgres.NewTransactionManager(db), auth.NewBcryptHasher(cfg), email, password)
	if err != nil {
		return err
	}

	logger.Info("Super admin seeded", slog.String("user_id", user.ID.String()), slog.String("email", user.Email))

	return nil
}
