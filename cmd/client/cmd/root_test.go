package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcatelz/internal/app/client"
	"alcatelz/internal/domain/record"
)

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), "args: %v", args)
	return out.Bytes()
}

func TestContributeFlow(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("APP_ENV", "prod")

	var published record.ContributeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/resources", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&published))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"recordName":"rec-1","status":"Ok"}`)
	}))
	defer srv.Close()

	var draft client.Draft
	require.NoError(t, json.Unmarshal(run(t, "contribute", "new", "-t", "Guide", "-c", "Coding", "-o", "json"), &draft))
	assert.Equal(t, "Guide", draft.Title)

	require.NoError(t, json.Unmarshal(run(t, "contribute", "add", draft.ID, "code", "--content", "let x = 1", "-o", "json"), &draft))
	require.Len(t, draft.Blocks, 1)
	assert.Equal(t, "Code", string(draft.Blocks[0].Type))

	var page record.Page
	require.NoError(t, json.Unmarshal(run(t, "contribute", "preview", draft.ID, "--theme", "dark", "-o", "json"), &page))
	require.Len(t, page.Blocks, 1)
	assert.Equal(t, "#2d2d2d", page.Blocks[0].Aux.Code.Background)

	var result client.PublishResult
	require.NoError(t, json.Unmarshal(run(t, "contribute", "publish", draft.ID, "--server", srv.URL, "-o", "json"), &result))
	require.Len(t, result.Published, 1)
	assert.Equal(t, "rec-1", result.Published[0].RecordName)
	assert.Equal(t, "Guide", published.Title)
	require.Len(t, published.Blocks, 1)
	assert.Equal(t, "let x = 1", published.Blocks[0].Content)
}
