// Package cloudkit reads and writes records in the public database of a
// CloudKit container through CloudKit Web Services.
package cloudkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"alcatelz/internal/app/server/config"
	"alcatelz/internal/domain/record"
)

const (
	resultsLimit = 200
	maxPages     = 50
	userAgent    = "Alcatelz-Server/1.0"
)

type Repository struct {
	client  *http.Client
	baseURL string
	token   string
	log     *slog.Logger
}

func NewRepository(cfg config.CloudKit, client *http.Client, log *slog.Logger) *Repository {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Repository{
		client:  client,
		baseURL: fmt.Sprintf("%s/database/1/%s/%s/public/records", base, cfg.Container, cfg.Environment),
		token:   cfg.APIToken,
		log:     log.With("component", "cloudkit_repository"),
	}
}

func (r *Repository) FetchByType(ctx context.Context, typ record.Type) ([]record.Record, error) {
	return r.query(ctx, ckQuery{RecordType: string(typ)})
}

func (r *Repository) QueryByField(ctx context.Context, typ record.Type, field, value string) ([]record.Record, error) {
	return r.query(ctx, ckQuery{
		RecordType: string(typ),
		FilterBy: []ckFilter{{
			FieldName:  field,
			Comparator: "EQUALS",
			FieldValue: ckValue{Value: value},
		}},
	})
}

func (r *Repository) FetchByName(ctx context.Context, typ record.Type, recordName string) (*record.Record, error) {
	var resp recordsResponse
	req := lookupRequest{Records: []ckRecord{{RecordName: recordName}}}
	if err := r.do(ctx, "lookup", req, &resp); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", recordName, err)
	}

	for _, ck := range resp.Records {
		if ck.ServerErrorCode != "" {
			if ck.ServerErrorCode == "NOT_FOUND" {
				return nil, record.ErrNotFound
			}
			return nil, fmt.Errorf("lookup %s: %s: %s", recordName, ck.ServerErrorCode, ck.Reason)
		}
		if ck.RecordName != recordName || (typ != "" && ck.RecordType != string(typ)) {
			continue
		}
		rec := toRecord(ck)
		return &rec, nil
	}
	return nil, record.ErrNotFound
}

func (r *Repository) Create(ctx context.Context, rec *record.Record) (string, error) {
	req := modifyRequest{
		Operations: []modifyOperation{{OperationType: "create", Record: fromRecord(rec)}},
		Atomic:     true,
	}
	var resp recordsResponse
	if err := r.do(ctx, "modify", req, &resp); err != nil {
		return "", fmt.Errorf("create record: %w", err)
	}
	if len(resp.Records) == 0 {
		return "", fmt.Errorf("create record: empty response")
	}
	created := resp.Records[0]
	if created.ServerErrorCode != "" {
		return "", fmt.Errorf("create record: %s: %s", created.ServerErrorCode, created.Reason)
	}
	return created.RecordName, nil
}

// query follows continuation markers until every page is read.
func (r *Repository) query(ctx context.Context, q ckQuery) ([]record.Record, error) {
	req := queryRequest{Query: q, ResultsLimit: resultsLimit}
	var out []record.Record

	for page := 0; page < maxPages; page++ {
		var resp recordsResponse
		if err := r.do(ctx, "query", req, &resp); err != nil {
			return nil, fmt.Errorf("query %s: %w", q.RecordType, err)
		}
		for _, ck := range resp.Records {
			if ck.ServerErrorCode != "" {
				r.log.Warn("skipping record with error",
					"record_name", ck.RecordName, "code", ck.ServerErrorCode)
				continue
			}
			out = append(out, toRecord(ck))
		}
		if resp.ContinuationMarker == "" {
			return out, nil
		}
		req.ContinuationMarker = resp.ContinuationMarker
	}

	r.log.Warn("query truncated", "record_type", q.RecordType, "records", len(out))
	return out, nil
}

func (r *Repository) do(ctx context.Context, op string, body, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := r.baseURL + "/" + op + "?ckAPIToken=" + url.QueryEscape(r.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	r.log.Debug("cloudkit request", "op", op)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var e errorResponse
		if err := json.Unmarshal(raw, &e); err == nil && e.ServerErrorCode != "" {
			if e.ServerErrorCode == "NOT_FOUND" {
				return record.ErrNotFound
			}
			return fmt.Errorf("cloudkit %s: %s", e.ServerErrorCode, e.Reason)
		}
		return fmt.Errorf("cloudkit status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
