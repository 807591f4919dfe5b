package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
	"alcatelz/internal/utils/logger"
)

// memRepository is an in-memory record store.
type memRepository struct {
	mock.Mock
	records []record.Record
}

func (m *memRepository) FetchByType(_ context.Context, typ record.Type) ([]record.Record, error) {
	var out []record.Record
	for _, r := range m.records {
		if r.RecordType == typ {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepository) FetchByName(_ context.Context, typ record.Type, name string) (*record.Record, error) {
	for _, r := range m.records {
		if r.RecordType == typ && r.RecordName == name {
			return &r, nil
		}
	}
	return nil, record.ErrNotFound
}

func (m *memRepository) QueryByField(_ context.Context, typ record.Type, field, value string) ([]record.Record, error) {
	var out []record.Record
	for _, r := range m.records {
		if r.RecordType == typ && r.Field(field) == value {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepository) Create(_ context.Context, rec *record.Record) (string, error) {
	m.records = append(m.records, *rec)
	return rec.RecordName, nil
}

func (m *memRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newServer(t *testing.T, repo *memRepository) *httptest.Server {
	t.Helper()
	log := logger.Discard()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := record.NewService(repo, record.NewFactory(), log, record.WithClock(func() time.Time { return now }))

	srv := httptest.NewServer(New(Deps{Service: svc, Store: repo, StoreName: "memory", Log: log}))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestAPI_ResourcePipeline(t *testing.T) {
	past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &memRepository{records: []record.Record{
		{
			RecordName:   "r1",
			RecordType:   record.TypeResource,
			Title:        "Swift basics",
			CategoryName: "Coding",
			Content:      `[{"id":"b","type":"Code","content":"print(1)","order":1},{"id":"a","type":"text","content":"Intro","order":0}]`,
		},
		{
			RecordName:     "old",
			RecordType:     record.TypeResource,
			Title:          "Old",
			Content:        "[]",
			ExpirationDate: &past,
		},
	}}
	srv := newServer(t, repo)

	var page record.Page
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/resources/r1", &page))
	require.Len(t, page.Blocks, 2)
	assert.Equal(t, "Intro", page.Blocks[0].DisplayContent)
	assert.Equal(t, "Code", page.Blocks[1].Kind)
	require.NotNil(t, page.Blocks[1].Aux)
	assert.True(t, page.Blocks[1].Aux.Copyable)
	assert.Equal(t, block.DefaultCodeLanguage, page.Blocks[1].Aux.Code.Language)

	var listing record.Listing
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/resources?q=SWIFT", &listing))
	assert.Equal(t, 1, listing.Total)

	assert.Equal(t, http.StatusGone, getJSON(t, srv.URL+"/api/v1/resources/old", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/v1/resources/missing", nil))
}

func TestAPI_SharedPage(t *testing.T) {
	repo := &memRepository{records: []record.Record{
		{
			RecordName: "p1",
			RecordType: record.TypeSharedPage,
			Title:      "Trip",
			Content:    "Hello\n\n[Image: SharedImage:img-1]\n\n----",
		},
		{
			RecordName: "img-1",
			RecordType: record.TypeSharedImage,
			Fields: map[string]string{
				record.FieldSharedPageID: "p1",
				record.FieldFileURL:      "https://cdn.example/img-1.jpg",
			},
		},
	}}
	srv := newServer(t, repo)

	var page record.Page
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/shared/p1", &page))
	require.Len(t, page.Blocks, 3)
	require.NotNil(t, page.Blocks[1].Aux)
	assert.Equal(t, "https://cdn.example/img-1.jpg", page.Blocks[1].Aux.Image.URL)
	assert.Equal(t, "Divider", page.Blocks[2].Kind)

	var problem struct {
		Detail string `json:"detail"`
	}
	require.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/v1/shared/nope", &problem))
	assert.Equal(t, record.MessageSharedNotFound, problem.Detail)
}

func TestAPI_Health(t *testing.T) {
	repo := &memRepository{}
	repo.On("Ping", mock.Anything).Return(nil)
	srv := newServer(t, repo)

	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/health/ready", nil))

	var doc map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/openapi.json", &doc))
	assert.Contains(t, doc["paths"], "/api/v1/shared/{id}")
}
