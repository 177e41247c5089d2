package docstore

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

// SchemaSQL creates the table backing PsqlStore.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS public.document
(
    path       VARCHAR PRIMARY KEY,
    collection VARCHAR     NOT NULL,
    data       JSONB       NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ix_document_collection ON public.document (collection);
`

const documentTable = "document"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type pgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Store = (*PsqlStore)(nil)

// PsqlStore keeps every document as one JSONB row in the document table.
type PsqlStore struct {
	db pgxConn
}

func NewPsqlStore(db pgxConn) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) Get(ctx context.Context, path string) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", path))

	_, id, err := splitDocPath(path)
	if err != nil {
		return nil, err
	}

	query, args, err := getQuery(path)
	if err != nil {
		return nil, err
	}

	var data []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("query document: %w", err)
	}

	return &Snapshot{ID: id, Path: path, Data: data}, nil
}

func (s *PsqlStore) Set(ctx context.Context, path string, doc any, opts SetOptions) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("path", path),
		attribute.Bool("merge", opts.Merge),
	)

	collection, _, err := splitDocPath(path)
	if err != nil {
		return err
	}
	data, err := encodeObject(doc)
	if err != nil {
		return err
	}

	query, args, err := setQuery(path, collection, data, opts.Merge)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (s *PsqlStore) Create(ctx context.Context, path string, doc any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", path))

	collection, _, err := splitDocPath(path)
	if err != nil {
		return err
	}
	data, err := encodeObject(doc)
	if err != nil {
		return err
	}

	query, args, err := insertQuery(path, collection, data).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDocumentExists
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *PsqlStore) Update(ctx context.Context, path string, fields map[string]any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", path))

	if _, _, err := splitDocPath(path); err != nil {
		return err
	}
	partial, err := encodeObject(fields)
	if err != nil {
		return err
	}

	query, args, err := updateQuery(path, partial)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (s *PsqlStore) Delete(ctx context.Context, path string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", path))

	if _, _, err := splitDocPath(path); err != nil {
		return err
	}

	query, args, err := psql.Delete(documentTable).Where(sq.Eq{"path": path}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (s *PsqlStore) List(ctx context.Context, collectionPath string, orderBy OrderBy) (_ []Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collectionPath))

	if err := validateCollectionPath(collectionPath); err != nil {
		return nil, err
	}

	query, args, err := listQuery(collectionPath)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0)
	for rows.Next() {
		var path string
		var data []byte
		if err := rows.Scan(&path, &data); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		_, id, err := splitDocPath(path)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, Snapshot{ID: id, Path: path, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(snapshots)))

	SortSnapshots(snapshots, orderBy)
	return snapshots, nil
}

func getQuery(path string) (string, []any, error) {
	query, args, err := psql.Select("data").
		From(documentTable).
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build select: %w", err)
	}
	return query, args, nil
}

func insertQuery(path, collection string, data []byte) sq.InsertBuilder {
	return psql.Insert(documentTable).
		Columns("path", "collection", "data").
		Values(path, collection, sq.Expr("?::jsonb", string(data)))
}

func setQuery(path, collection string, data []byte, merge bool) (string, []any, error) {
	onConflict := "ON CONFLICT (path) DO UPDATE SET data = EXCLUDED.data, updated_at = now()"
	if merge {
		onConflict = "ON CONFLICT (path) DO UPDATE SET data = document.data || EXCLUDED.data, updated_at = now()"
	}
	query, args, err := insertQuery(path, collection, data).Suffix(onConflict).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build upsert: %w", err)
	}
	return query, args, nil
}

func updateQuery(path string, partial []byte) (string, []any, error) {
	query, args, err := psql.Update(documentTable).
		Set("data", sq.Expr("data || ?::jsonb", string(partial))).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build update: %w", err)
	}
	return query, args, nil
}

func listQuery(collectionPath string) (string, []any, error) {
	query, args, err := psql.Select("path", "data").
		From(documentTable).
		Where(sq.Eq{"collection": collectionPath}).
		OrderBy("path").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build list: %w", err)
	}
	return query, args, nil
}
