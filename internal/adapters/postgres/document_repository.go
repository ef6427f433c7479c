package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
)

// DocumentRepository implements port.DocumentStorePort over a PostgreSQL
// table of jsonb documents:
//
//	CREATE TABLE property_documents (
//	    seq bigserial PRIMARY KEY,
//	    doc jsonb NOT NULL
//	);
//
// seq is the store-assigned monotonic sequence key used for stable batch
// pagination. Only the limited predicate language of the port is rendered;
// the adapter never grows store-side capabilities the port does not promise.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) (*DocumentRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &DocumentRepository{pool: pool}, nil
}

func (r *DocumentRepository) Query(ctx context.Context, preds []domain.NativePredicate, offset, limit int) ([]domain.RawPropertyDocument, error) {
	where, args, qb, err := buildWhereClause(preds)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT seq, doc
		FROM property_documents
		%s
		ORDER BY seq ASC
		LIMIT $%d OFFSET $%d`, where, qb.argID, qb.argID+1)
	args = append(args, limit, offset)

	return r.fetch(ctx, query, args)
}

func (r *DocumentRepository) Count(ctx context.Context, preds []domain.NativePredicate) (int, error) {
	where, args, _, err := buildWhereClause(preds)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM property_documents %s`, where)

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

func (r *DocumentRepository) FetchBatch(ctx context.Context, preds []domain.NativePredicate, afterSeq int64, limit int) ([]domain.RawPropertyDocument, error) {
	where, args, qb, err := buildWhereClause(preds)
	if err != nil {
		return nil, fmt.Errorf("failed to build batch query: %w", err)
	}

	seqCond := fmt.Sprintf("seq > $%d", qb.argID)
	if where == "" {
		where = "WHERE " + seqCond
	} else {
		where = where + " AND " + seqCond
	}
	args = append(args, afterSeq, limit)

	query := fmt.Sprintf(`
		SELECT seq, doc
		FROM property_documents
		%s
		ORDER BY seq ASC
		LIMIT $%d`, where, qb.argID+1)

	return r.fetch(ctx, query, args)
}

func (r *DocumentRepository) fetch(ctx context.Context, query string, args []interface{}) ([]domain.RawPropertyDocument, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.RawPropertyDocument
	for rows.Next() {
		var seq int64
		var docBytes []byte
		if err := rows.Scan(&seq, &docBytes); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}

		doc := make(domain.RawPropertyDocument)
		if err := json.Unmarshal(docBytes, &doc); err != nil {
			// A corrupt document must not sink the whole batch; it surfaces
			// as a record normalizing to empty fields instead.
			doc = make(domain.RawPropertyDocument)
		}
		// The store-assigned key always wins over anything embedded in the
		// document body.
		doc["sequence_key"] = seq
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
