package helper

import (
	"checkinhq/config"
	"errors"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsPath = "file://migrations/postgres"

func newMigrator(cfg *config.Config) (*migrate.Migrate, error) {
	write := cfg.DB.Postgres.Write

	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		cfg.DB.Postgres.Prefix+write.Name,
		write.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(migrationsPath, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer mig.Close()

	run := func(apply func() error, failMsg, okMsg string) error {
		if err := apply(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("%s: %w", failMsg, err)
		}

		log.Info().Msg(okMsg)

		return nil
	}

	switch action {
	case "up":
		return run(mig.Up, "error running migrations", "Database migrations completed successfully")
	case "step-up":
		return run(func() error { return mig.Steps(1) }, "error running migrations", "Database migrations completed successfully")
	case "down":
		return run(func() error { return mig.Steps(-1) }, "error rolling back migrations", "Database migrations rolled back successfully")
	case "drop":
		return run(mig.Down, "error rolling back migrations", "Database migrations rolled back successfully")
	}

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, "step-up")
}

func Down(cfg *config.Config) error {
	return Runner(cfg, "down")
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, "drop")
}
