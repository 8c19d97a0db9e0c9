// Package postgres implements the domain services on top of PostgreSQL.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/transaction"
)

// DB is a repository.DBTX that routes every statement through the
// transaction carried in the context, falling back to the pool.
type DB struct {
	pool *pgxpool.Pool
}

var _ repository.DBTX = (*DB)(nil)

func NewDB(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

func (db *DB) conn(ctx context.Context) repository.DBTX {
	if tx, ok := transaction.TxFromContext(ctx); ok {
		return tx
	}
	return db.pool
}

func (db *DB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return db.conn(ctx).Exec(ctx, sql, args...)
}

func (db *DB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.conn(ctx).Query(ctx, sql, args...)
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.conn(ctx).QueryRow(ctx, sql, args...)
}

// TxScope opens pgx transactions for transaction.Scope callers.
type TxScope struct {
	pool *pgxpool.Pool
}

var _ transaction.Scope = (*TxScope)(nil)

func NewTxScope(pool *pgxpool.Pool) *TxScope {
	return &TxScope{pool: pool}
}

// Execute runs fn in a new transaction, or inside the one already carried by
// ctx so nested scopes commit together.
func (s *TxScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := transaction.TxFromContext(ctx); ok {
		return fn(ctx)
	}
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(transaction.WithTx(ctx, tx))
	})
}
