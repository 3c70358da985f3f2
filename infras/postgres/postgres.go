package postgres

import (
	"checkinhq/config"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConns = 10
	maxOpenConns = 10
)

// Connection splits reads and writes across two pools. Both sides may
// point at the same instance in small deployments.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", pg.Read, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", pg.Write, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
	}
}

func connect(role string, instance config.PostgresInstance, prefix string, maxRetry, waitSeconds int) *sqlx.DB {
	dbName := prefix + instance.Name

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		instance.Username,
		instance.Password,
		net.JoinHostPort(instance.Host, instance.Port),
		dbName,
		instance.SSLMode,
	)

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)

			log.Info().
				Str("role", role).
				Str("host", instance.Host).
				Str("port", instance.Port).
				Str("dbName", dbName).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("role", role).
			Str("host", instance.Host).
			Str("port", instance.Port).
			Str("dbName", dbName).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}
