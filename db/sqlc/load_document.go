package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/Drolfothesgnir/minidom/tag"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LoadDocumentResult struct {
	Document
	Nodes *dom.Document `json:"-"`
}

// LoadDocument reads the document row with its nodes and rebuilds the in-memory Document.
// Every node goes through dom.Document.Add, so rows breaking the parent ordering
// are reported as ErrDataCorrupted.
func (s *SQLStore) LoadDocument(ctx context.Context, id uuid.UUID) (LoadDocumentResult, error) {
	var result LoadDocumentResult

	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result, ErrDocumentNotFound
		}
		return result, err
	}

	rows, err := s.ListNodes(ctx, id)
	if err != nil {
		return result, err
	}

	nodes, err := buildDocument(rows)
	if err != nil {
		return result, err
	}

	if nodes.Len() != int(doc.NodeCount) {
		return result, fmt.Errorf("document %s has %d nodes, expected %d: %w", id, nodes.Len(), doc.NodeCount, ErrDataCorrupted)
	}

	result.Document = doc
	result.Nodes = nodes

	return result, nil
}

// buildDocument converts node rows, ordered by idx, back into a Document.
func buildDocument(rows []Node) (*dom.Document, error) {
	doc := dom.NewDocument(len(rows))

	for i, row := range rows {
		if int(row.Idx) != i {
			return nil, fmt.Errorf("node %d stored at index %d: %w", row.Idx, i, ErrDataCorrupted)
		}

		kind, err := tag.ParseKind(row.Tag)
		if err != nil {
			return nil, fmt.Errorf("node %d: %v: %w", row.Idx, err, ErrDataCorrupted)
		}

		_, err = doc.Add(dom.Node{
			Tag:    kind,
			Text:   row.Text,
			Parent: int(row.Parent),
		})
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrDataCorrupted)
		}
	}

	return doc, nil
}

// RemoveDocument deletes the document with its nodes. It returns ErrDocumentNotFound if nothing was deleted.
func (s *SQLStore) RemoveDocument(ctx context.Context, id uuid.UUID) error {
	n, err := s.DeleteDocument(ctx, id)
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
