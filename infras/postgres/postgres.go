package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"hotelhills/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection holds the read and write pools. Repositories read from Read and write to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Pool is the tuning shared by both pools.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	MaxRetry    int
	RetryWait   time.Duration
}

func poolFromConfig(cfg *config.Config) Pool {
	pg := cfg.DB.Postgres

	return Pool{
		MaxOpen:     pg.MaxOpenConns,
		MaxIdle:     pg.MaxIdleConns,
		MaxLifetime: time.Duration(pg.ConnMaxLifetime) * time.Minute,
		MaxRetry:    pg.MaxRetry,
		RetryWait:   time.Duration(pg.RetryWaitTime) * time.Second,
	}
}

// New opens both pools and exits the process when either cannot be reached after all retries.
func New(cfg *config.Config) *Connection {
	pool := poolFromConfig(cfg)
	prefix := cfg.DB.Postgres.Prefix

	conn := &Connection{
		Read:  Open("read", DSN(cfg.DB.Postgres.Read, prefix, nil), pool),
		Write: Open("write", DSN(cfg.DB.Postgres.Write, prefix, nil), pool),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Int("maxRetry", pool.MaxRetry).Msg("Could not connect to database")
	}

	return conn
}

func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to close database connections: %w", err)
	}

	return nil
}

// DSN renders a lib/pq URL for the endpoint. Credentials are escaped and the
// database name carries the optional environment prefix.
func DSN(endpoint config.PostgresEndpoint, prefix string, extra url.Values) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Open connects with retries and returns nil when every attempt failed.
func Open(name, dsn string, pool Pool) *sqlx.DB {
	logger := log.With().Str("pool", name).Logger()

	for attempt := 1; attempt <= max(pool.MaxRetry, 1); attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pool.MaxOpen)
			db.SetMaxIdleConns(pool.MaxIdle)
			db.SetConnMaxLifetime(pool.MaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(pool.RetryWait)
	}

	return nil
}
