//go:generate mockgen -source ./database.go -destination=./mocks/database.go -package=mock_database
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type DB interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	BeginTx(ctx context.Context) (Tx, error)
}

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Pool is the subset of *pgxpool.Pool the adapter relies on.
type Pool interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// Database bounds every outbound call with timeout. A call that outlives it
// fails with an error wrapping context.DeadlineExceeded.
type Database struct {
	cluster Pool
	timeout time.Duration
}

func NewDatabase(cluster Pool, timeout time.Duration) *Database {
	return &Database{cluster: cluster, timeout: timeout}
}

func (db *Database) Close() {
	db.cluster.Close()
}

func (db *Database) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.timeout)
}

func (db *Database) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := db.bounded(ctx)
	defer cancel()
	return timeoutErr(ctx, db.timeout, pgxscan.Get(ctx, db.cluster, dest, query, args...))
}

func (db *Database) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := db.bounded(ctx)
	defer cancel()
	return timeoutErr(ctx, db.timeout, pgxscan.Select(ctx, db.cluster, dest, query, args...))
}

func (db *Database) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	ctx, cancel := db.bounded(ctx)
	defer cancel()
	tag, err := db.cluster.Exec(ctx, query, args...)
	return tag, timeoutErr(ctx, db.timeout, err)
}

func (db *Database) ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	ctx, cancel := db.bounded(ctx)
	return &boundedRow{
		ctx:     ctx,
		row:     db.cluster.QueryRow(ctx, query, args...),
		cancel:  cancel,
		timeout: db.timeout,
	}
}

func (db *Database) BeginTx(ctx context.Context) (Tx, error) {
	bctx, cancel := db.bounded(ctx)
	defer cancel()
	tx, err := db.cluster.Begin(bctx)
	if err != nil {
		return nil, timeoutErr(bctx, db.timeout, err)
	}
	return &Transaction{tx: tx, timeout: db.timeout}, nil
}

// boundedRow releases its deadline once the row has been scanned.
type boundedRow struct {
	ctx     context.Context
	row     pgx.Row
	cancel  context.CancelFunc
	timeout time.Duration
}

func (r *boundedRow) Scan(dest ...interface{}) error {
	defer r.cancel()
	return timeoutErr(r.ctx, r.timeout, r.row.Scan(dest...))
}

type Transaction struct {
	tx      pgx.Tx
	timeout time.Duration
}

func (t *Transaction) Commit(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return timeoutErr(ctx, t.timeout, t.tx.Commit(ctx))
}

func (t *Transaction) Rollback(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.tx.Rollback(ctx)
}

func (t *Transaction) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	tag, err := t.tx.Exec(ctx, query, args...)
	return tag, timeoutErr(ctx, t.timeout, err)
}

func (t *Transaction) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return timeoutErr(ctx, t.timeout, pgxscan.Get(ctx, t.tx, dest, query, args...))
}

func (t *Transaction) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return timeoutErr(ctx, t.timeout, pgxscan.Select(ctx, t.tx, dest, query, args...))
}

func timeoutErr(ctx context.Context, d time.Duration, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("store call exceeded %s: %w", d, context.DeadlineExceeded)
	}
	return err
}
