package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"alcatelz/internal/domain/record"
)

const recordColumns = `record_name, record_type, title, author, summary, category_name,
		       created_by, content, expiration_date, fields, created_at`

// fieldColumns maps record field names to their dedicated columns.
// Other fields live in the fields JSONB column.
var fieldColumns = map[string]string{
	record.FieldTitle:        "title",
	record.FieldAuthor:       "author",
	record.FieldSummary:      "summary",
	record.FieldCategoryName: "category_name",
	record.FieldCreatedBy:    "created_by",
	record.FieldContent:      "content",
	"recordName":             "record_name",
}

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository"),
	}
}

func (r *RecordRepository) FetchByType(ctx context.Context, typ record.Type) ([]record.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE record_type = $1
		ORDER BY created_at DESC, record_name`

	rows, err := r.pool.Query(ctx, query, string(typ))
	if err != nil {
		r.log.Error("failed to fetch records", "record_type", typ, "error", err)
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func (r *RecordRepository) FetchByName(ctx context.Context, typ record.Type, recordName string) (*record.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE record_type = $1 AND record_name = $2`

	rec, err := r.scanRecord(r.pool.QueryRow(ctx, query, string(typ), recordName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		r.log.Error("failed to fetch record",
			"record_type", typ, "record_name", recordName, "error", err)
		return nil, fmt.Errorf("fetch record: %w", err)
	}
	return rec, nil
}

func (r *RecordRepository) QueryByField(ctx context.Context, typ record.Type, field, value string) ([]record.Record, error) {
	predicate, args := fieldFilter(field, value)
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE record_type = $1 AND ` + predicate + `
		ORDER BY created_at, record_name`

	rows, err := r.pool.Query(ctx, query, append([]any{string(typ)}, args...)...)
	if err != nil {
		r.log.Error("failed to query records",
			"record_type", typ, "field", field, "error", err)
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// fieldFilter returns the WHERE predicate for field and its arguments,
// numbered after the record type.
func fieldFilter(field, value string) (string, []any) {
	if col, ok := fieldColumns[field]; ok {
		return col + " = $2", []any{value}
	}
	return "fields ->> $2 = $3", []any{field, value}
}

func (r *RecordRepository) Create(ctx context.Context, rec *record.Record) (string, error) {
	if rec.RecordName == "" {
		rec.RecordName = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	fields, err := fieldsToJSON(rec.Fields)
	if err != nil {
		return "", fmt.Errorf("create record: %w", err)
	}

	const query = `
		INSERT INTO records (record_name, record_type, title, author, summary, category_name,
		                     created_by, content, expiration_date, fields, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING record_name`

	var name string
	err = r.pool.QueryRow(ctx, query,
		rec.RecordName, string(rec.RecordType), rec.Title, rec.Author, rec.Summary,
		rec.CategoryName, rec.CreatedBy, rec.Content, rec.ExpirationDate, fields, rec.CreatedAt,
	).Scan(&name)
	if err != nil {
		r.log.Error("failed to create record", "record_type", rec.RecordType, "error", err)
		return "", fmt.Errorf("create record: %w", err)
	}
	return name, nil
}

// Вспомогательные методы
func (r *RecordRepository) scanRecords(rows pgx.Rows) ([]record.Record, error) {
	var records []record.Record

	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func (r *RecordRepository) scanRecord(row pgx.Row) (*record.Record, error) {
	var (
		rec      record.Record
		typ      string
		expires  *time.Time
		rawField []byte
	)

	err := row.Scan(
		&rec.RecordName, &typ, &rec.Title, &rec.Author, &rec.Summary,
		&rec.CategoryName, &rec.CreatedBy, &rec.Content, &expires,
		&rawField, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.RecordType = record.Type(typ)
	rec.ExpirationDate = expires
	rec.Fields, err = fieldsFromJSON(rawField)
	if err != nil {
		r.log.Warn("ignoring malformed record fields", "record_name", rec.RecordName, "error", err)
	}
	return &rec, nil
}

func fieldsToJSON(fields map[string]string) ([]byte, error) {
	if fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(fields)
}

// fieldsFromJSON flattens a JSON object into strings. Non string values keep
// their JSON text.
func fieldsFromJSON(data []byte) (map[string]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		out[k] = string(v)
	}
	return out, nil
}
