package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Querier
	SaveDocumentTx(ctx context.Context, arg SaveDocumentTxParams) (SaveDocumentTxResult, error)
	LoadDocument(ctx context.Context, id uuid.UUID) (LoadDocumentResult, error)
	RemoveDocument(ctx context.Context, id uuid.UUID) error
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// execTx runs fn inside a database transaction, rolling back on error.
func (s *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// Shutdown closes the connection pool.
func (s *SQLStore) Shutdown() {
	s.connPool.Close()
}
