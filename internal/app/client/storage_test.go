package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcatelz/internal/domain/block"
	"alcatelz/internal/utils/logger"
)

func TestDraftStores(t *testing.T) {
	stores := map[string]func(t *testing.T) DraftStore{
		"memory": func(t *testing.T) DraftStore { return NewMemoryStorage() },
		"sqlite": func(t *testing.T) DraftStore {
			s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "drafts.db"), logger.Discard())
			require.NoError(t, err)
			return s
		},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			defer store.Close()

			created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
			older := &Draft{
				ID:           "d1",
				Title:        "First",
				CategoryName: "Coding",
				Blocks: []block.Block{
					{ID: "a", Type: block.TypeText, Content: "hello", Order: 0},
					{ID: "b", Type: block.TypeTodo, Content: `[{"id":"t","text":"x","isCompleted":true}]`, Order: 1},
				},
				CreatedAt: created,
				UpdatedAt: created,
			}
			newer := &Draft{ID: "d2", Title: "Second", Blocks: []block.Block{}, CreatedAt: created, UpdatedAt: created.Add(time.Hour)}

			require.NoError(t, store.Save(older))
			require.NoError(t, store.Save(newer))

			got, err := store.Get("d1")
			require.NoError(t, err)
			assert.Equal(t, "First", got.Title)
			assert.Equal(t, older.Blocks, got.Blocks)
			assert.True(t, created.Equal(got.CreatedAt))

			got.PublishedAs = "rec-1"
			require.NoError(t, store.Save(got))
			again, err := store.Get("d1")
			require.NoError(t, err)
			assert.True(t, again.Published())

			list, err := store.List()
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "d2", list[0].ID)

			require.NoError(t, store.Delete("d2"))
			assert.ErrorIs(t, store.Delete("d2"), ErrDraftNotFound)
			_, err = store.Get("d2")
			assert.ErrorIs(t, err, ErrDraftNotFound)
		})
	}
}
