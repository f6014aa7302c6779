package db

import (
	"context"
	"fmt"
	"math"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/google/uuid"
)

type SaveDocumentTxParams struct {
	Source    string        `json:"source"`
	Document  *dom.Document `json:"-"`
	Truncated bool          `json:"truncated"`
}

type SaveDocumentTxResult struct {
	Document
	Nodes int64 `json:"nodes"`
}

// SaveDocumentTx inserts the document row and copies all its nodes in one transaction.
func (s *SQLStore) SaveDocumentTx(ctx context.Context, arg SaveDocumentTxParams) (SaveDocumentTxResult, error) {
	var result SaveDocumentTxResult

	n := 0
	if arg.Document != nil {
		n = arg.Document.Len()
	}

	if n > math.MaxInt32 {
		return result, ErrDocumentTooLarge
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return result, err
	}

	err = s.execTx(ctx, func(q *Queries) error {
		doc, err := q.CreateDocument(ctx, CreateDocumentParams{
			ID:        id,
			Source:    arg.Source,
			NodeCount: int32(n),
			Truncated: arg.Truncated,
		})
		if err != nil {
			return err
		}

		result.Document = doc

		if n == 0 {
			return nil
		}

		rows := make([]CreateNodesParams, n)
		for i := range rows {
			node := arg.Document.Node(i)
			rows[i] = CreateNodesParams{
				DocumentID: id,
				Idx:        int32(i),
				Tag:        node.Tag.String(),
				Text:       node.Text,
				Parent:     int32(node.Parent),
			}
		}

		copied, err := q.CreateNodes(ctx, rows)
		if err != nil {
			return err
		}

		if copied != int64(n) {
			return fmt.Errorf("copied %d nodes out of %d: %w", copied, n, ErrDataCorrupted)
		}

		result.Nodes = copied
		return nil
	})

	return result, err
}
