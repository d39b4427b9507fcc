package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/logging"
)

const DefaultQueryTimeout = 5 * time.Second

// Querier is the connection surface the store needs. Both *pgx.Conn and
// pgxmock.PgxConnIface satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close(ctx context.Context) error
}

// Connector acquires a fresh connection per call. A pooled implementation can
// be substituted here without touching any caller of the store.
type Connector interface {
	Connect(ctx context.Context) (Querier, error)
}

type PgxConnector struct {
	url string
}

func NewPgxConnector(url string) *PgxConnector {
	return &PgxConnector{
		url: url,
	}
}

func (c *PgxConnector) Connect(ctx context.Context) (Querier, error) {
	conn, err := pgx.Connect(ctx, c.url)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// RunOutcome reports the effect of a mutating statement: how many rows it
// touched and, for inserts using RETURNING id, the generated identity.
type RunOutcome struct {
	RowsAffected int64
	InsertedID   int64
}

// Store executes exactly one statement per operation, opening a connection
// before the statement and closing it afterwards on every exit path. Every
// operation resolves within the configured deadline.
type Store struct {
	connector Connector
	logger    logging.Logger
	timeout   time.Duration
}

func NewStore(connector Connector, logger logging.Logger, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	return &Store{
		connector: connector,
		logger:    logger,
		timeout:   timeout,
	}
}

func (s *Store) open(ctx context.Context) (Querier, error) {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		return nil, NewFailure(FailedToOpen, err)
	}

	return conn, nil
}

// close releases the connection. A close failure is logged rather than
// returned so it never masks the primary operation's result.
func (s *Store) close(ctx context.Context, conn Querier) {
	if err := conn.Close(ctx); err != nil {
		failure := NewFailure(FailedToClose, err)
		s.logger.Error("failed to close the database connection", "error", failure)
	}
}

// Retrieve runs a query expected to return zero or more rows and collects them
// into T by column name. An empty result set is a valid success; callers decide
// whether zero rows is an error.
func Retrieve[T any](ctx context.Context, s *Store, query string, args ...any) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	conn, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx, conn)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, NewFailure(FailedToRetrieve, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, NewFailure(FailedToRetrieve, err)
	}

	return records, nil
}

// Run executes a mutating statement and reports how many rows it affected.
func (s *Store) Run(ctx context.Context, query string, args ...any) (RunOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	conn, err := s.open(ctx)
	if err != nil {
		return RunOutcome{}, err
	}
	defer s.close(ctx, conn)

	tag, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return RunOutcome{}, NewFailure(FailedToRun, err)
	}

	return RunOutcome{RowsAffected: tag.RowsAffected()}, nil
}

// RunReturningID executes an INSERT ... RETURNING id statement and reports the
// generated identity alongside the number of inserted rows. Postgres only
// surfaces generated keys through RETURNING, hence the dedicated call.
func (s *Store) RunReturningID(ctx context.Context, query string, args ...any) (RunOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	conn, err := s.open(ctx)
	if err != nil {
		return RunOutcome{}, err
	}
	defer s.close(ctx, conn)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return RunOutcome{}, NewFailure(FailedToRun, err)
	}

	var outcome RunOutcome
	for rows.Next() {
		if err := rows.Scan(&outcome.InsertedID); err != nil {
			rows.Close()
			return RunOutcome{}, NewFailure(FailedToRun, err)
		}
		outcome.RowsAffected++
	}

	if err := rows.Err(); err != nil {
		return RunOutcome{}, NewFailure(FailedToRun, err)
	}

	return outcome, nil
}
