package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"concierge/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection holds the read and write pools. Reads may go to a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type dsn struct {
	username string
	password string
	host     string
	port     string
	name     string
	sslMode  string
}

func (d dsn) String() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		d.username,
		d.password,
		net.JoinHostPort(d.host, d.port),
		d.name,
		d.sslMode,
	)
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	write := connect("write", dsn{
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		name:     dbName(pg.Prefix, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	}, pg.MaxRetry, pg.RetryWaitTime)

	read := connect("read", dsn{
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		name:     dbName(pg.Prefix, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
	}, pg.MaxRetry, pg.RetryWaitTime)

	if write == nil || read == nil {
		log.Fatal().Msg("Failed connecting to database after all retries")
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

func dbName(prefix, baseName string) string {
	return prefix + baseName
}

func connect(name string, descriptor dsn, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor.String())
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", descriptor.host).
				Str("port", descriptor.port).
				Str("dbName", descriptor.name).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", descriptor.host).
			Str("dbName", descriptor.name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Write.Close(), c.Read.Close())
}
