package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// copyRecorder is a DBTX that only supports CopyFrom and keeps what it got.
type copyRecorder struct {
	table   pgx.Identifier
	columns []string
	rows    [][]any
}

func (r *copyRecorder) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not supported")
}

func (r *copyRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (r *copyRecorder) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (r *copyRecorder) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	r.table = tableName
	r.columns = columnNames
	for rowSrc.Next() {
		values, err := rowSrc.Values()
		if err != nil {
			return 0, err
		}
		r.rows = append(r.rows, values)
	}
	return int64(len(r.rows)), rowSrc.Err()
}

func TestCreateNodes_CopiesIntoNodesTable(t *testing.T) {
	id := uuid.New()
	rec := &copyRecorder{}

	n, err := New(rec).CreateNodes(context.Background(), []CreateNodesParams{
		{DocumentID: id, Idx: 0, Tag: "Div", Parent: -1},
		{DocumentID: id, Idx: 1, Tag: "Text", Text: "Hello", Parent: 0},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	require.Equal(t, pgx.Identifier{"nodes"}, rec.table)
	require.Equal(t, []string{"document_id", "idx", "tag", "text", "parent"}, rec.columns)
	require.Equal(t, [][]any{
		{id, int32(0), "Div", "", int32(-1)},
		{id, int32(1), "Text", "Hello", int32(0)},
	}, rec.rows)
}

func TestCreateNodes_Empty(t *testing.T) {
	rec := &copyRecorder{}

	n, err := New(rec).CreateNodes(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, rec.rows)
}
