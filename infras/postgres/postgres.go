package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"desk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint describes one side of the read/write split.
type Endpoint struct {
	Name     string
	Username string
	Password string
	Host     string
	Port     string
	Database string
	SSLMode  string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := connect(WriteEndpoint(cfg), pg.MaxRetry, pg.RetryWaitTime)
	if write == nil {
		log.Fatal().Msg("Could not connect to the write database")
	}

	read := connect(ReadEndpoint(cfg), pg.MaxRetry, pg.RetryWaitTime)
	if read == nil {
		log.Warn().Msg("Read database unreachable, routing reads to the write database")

		read = write
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write database: %w", err)
	}

	if c.Read != c.Write {
		if err := c.Read.PingContext(ctx); err != nil {
			return fmt.Errorf("read database: %w", err)
		}
	}

	return nil
}

func (c *Connection) Close() error {
	var errs []error

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	return errors.Join(errs...)
}

// DatabaseName applies the configured prefix to a base name.
func DatabaseName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func WriteEndpoint(cfg *config.Config) Endpoint {
	w := cfg.DB.Postgres.Write

	return Endpoint{
		Name:     "write",
		Username: w.Username,
		Password: w.Password,
		Host:     w.Host,
		Port:     w.Port,
		Database: DatabaseName(cfg, w.Name),
		SSLMode:  w.SSLMode,
	}
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	r := cfg.DB.Postgres.Read

	return Endpoint{
		Name:     "read",
		Username: r.Username,
		Password: r.Password,
		Host:     r.Host,
		Port:     r.Port,
		Database: DatabaseName(cfg, r.Name),
		SSLMode:  r.SSLMode,
	}
}

// DSN renders the endpoint as a postgres URL. Extra query parameters are
// appended verbatim, which is how the migrator passes its table name.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}
	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Database,
		RawQuery: query.Encode(),
	}

	return u.String()
}

func connect(endpoint Endpoint, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", endpoint.DSN(nil))
		if err == nil {
			log.
				Info().
				Str("name", endpoint.Name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.Database).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", endpoint.Name).
			Str("host", endpoint.Host).
			Str("port", endpoint.Port).
			Str("dbName", endpoint.Database).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
