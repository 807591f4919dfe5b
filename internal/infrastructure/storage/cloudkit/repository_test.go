package cloudkit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"alcatelz/internal/app/server/config"
	"alcatelz/internal/domain/record"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *Repository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.CloudKit{
		BaseURL:     srv.URL,
		Container:   "iCloud.Test",
		Environment: "development",
		APIToken:    "secret token",
	}
	return NewRepository(cfg, srv.Client(), slog.Default())
}

func TestRepository_FetchByType(t *testing.T) {
	calls := 0
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/database/1/iCloud.Test/development/public/records/query", r.URL.Path)
		assert.Equal(t, "secret token", r.URL.Query().Get("ckAPIToken"))

		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "CD_ResourceEntity", req.Query.RecordType)

		if req.ContinuationMarker == "" {
			_, _ = io.WriteString(w, `{
				"records": [{
					"recordName": "r1",
					"recordType": "CD_ResourceEntity",
					"created": {"timestamp": 1700000000000},
					"fields": {
						"title": {"value": "Intro", "type": "STRING"},
						"CD_categoryName": {"value": "Coding", "type": "STRING"},
						"content": {"value": "[]", "type": "STRING"},
						"expirationDate": {"value": 1800000000000, "type": "TIMESTAMP"},
						"views": {"value": 12, "type": "INT64"}
					}
				}],
				"continuationMarker": "next"
			}`)
			return
		}
		assert.Equal(t, "next", req.ContinuationMarker)
		_, _ = io.WriteString(w, `{"records": [
			{"recordName": "r2", "recordType": "CD_ResourceEntity", "fields": {"title": {"value": "Second"}}},
			{"recordName": "bad", "serverErrorCode": "ACCESS_DENIED"}
		]}`)
	})

	records, err := repo.FetchByType(context.Background(), record.TypeResource)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "r1", first.RecordName)
	assert.Equal(t, record.TypeResource, first.RecordType)
	assert.Equal(t, "Intro", first.Title)
	assert.Equal(t, "Coding", first.CategoryName)
	assert.Equal(t, "[]", first.Content)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), first.CreatedAt)
	require.NotNil(t, first.ExpirationDate)
	assert.Equal(t, time.UnixMilli(1800000000000).UTC(), *first.ExpirationDate)
	assert.Equal(t, "12", first.Fields["views"])

	assert.Equal(t, "Second", records[1].Title)
}

func TestRepository_QueryByField(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SharedImage", req.Query.RecordType)
		require.Len(t, req.Query.FilterBy, 1)
		assert.Equal(t, "sharedPageId", req.Query.FilterBy[0].FieldName)
		assert.Equal(t, "EQUALS", req.Query.FilterBy[0].Comparator)
		assert.Equal(t, "page-1", req.Query.FilterBy[0].FieldValue.Value)

		_, _ = io.WriteString(w, `{"records": [{
			"recordName": "img-1",
			"recordType": "SharedImage",
			"fields": {
				"sharedPageId": {"value": "page-1"},
				"imageAsset": {"value": {"fileChecksum": "x", "downloadURL": "https://cvws.icloud-content.com/1"}, "type": "ASSETID"}
			}
		}]}`)
	})

	assets, err := repo.QueryByField(context.Background(), record.TypeSharedImage, record.FieldSharedPageID, "page-1")

	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "page-1", assets[0].Fields[record.FieldSharedPageID])
	assert.Equal(t, "https://cvws.icloud-content.com/1", assets[0].Fields[record.FieldDownloadURL])
	assert.Equal(t, "https://cvws.icloud-content.com/1", record.ImageMap(assets)["img-1"])
}

func TestRepository_FetchByName(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		title   string
	}{
		{
			name:   "found",
			status: http.StatusOK,
			body:   `{"records":[{"recordName":"p1","recordType":"SharedPage","fields":{"title":{"value":"Shared"}}}]}`,
			title:  "Shared",
		},
		{
			name:    "record level not found",
			status:  http.StatusOK,
			body:    `{"records":[{"recordName":"p1","serverErrorCode":"NOT_FOUND","reason":"missing"}]}`,
			wantErr: record.ErrNotFound,
		},
		{
			name:    "wrong type",
			status:  http.StatusOK,
			body:    `{"records":[{"recordName":"p1","recordType":"CD_ResourceEntity"}]}`,
			wantErr: record.ErrNotFound,
		},
		{
			name:    "http not found",
			status:  http.StatusNotFound,
			body:    `{"serverErrorCode":"NOT_FOUND","reason":"no such record"}`,
			wantErr: record.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.URL.Path, "/records/lookup")
				var req lookupRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				require.Len(t, req.Records, 1)
				assert.Equal(t, "p1", req.Records[0].RecordName)

				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			rec, err := repo.FetchByName(context.Background(), record.TypeSharedPage, "p1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, rec.Title)
		})
	}
}

func TestRepository_ServerError(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"serverErrorCode":"AUTHENTICATION_FAILED","reason":"bad token"}`)
	})

	_, err := repo.FetchByType(context.Background(), record.TypeResource)

	assert.ErrorContains(t, err, "AUTHENTICATION_FAILED")
	assert.NotErrorIs(t, err, record.ErrNotFound)
}

func TestRepository_Create(t *testing.T) {
	expires := time.UnixMilli(1900000000000).UTC()
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/records/modify")

		var req modifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Operations, 1)
		op := req.Operations[0]
		assert.Equal(t, "create", op.OperationType)
		assert.Equal(t, "CD_ResourceEntity", op.Record.RecordType)
		assert.Equal(t, "name-1", op.Record.RecordName)
		assert.JSONEq(t, `"Guide"`, string(op.Record.Fields["title"].Value))
		assert.JSONEq(t, `"[{\"id\":\"a\"}]"`, string(op.Record.Fields["content"].Value))
		assert.JSONEq(t, `1900000000000`, string(op.Record.Fields["expirationDate"].Value))
		_, hasAuthor := op.Record.Fields["author"]
		assert.False(t, hasAuthor)

		_, _ = io.WriteString(w, `{"records":[{"recordName":"name-1","recordType":"CD_ResourceEntity"}]}`)
	})

	name, err := repo.Create(context.Background(), &record.Record{
		RecordName:     "name-1",
		RecordType:     record.TypeResource,
		Title:          "Guide",
		Content:        `[{"id":"a"}]`,
		ExpirationDate: &expires,
	})

	require.NoError(t, err)
	assert.Equal(t, "name-1", name)
}
