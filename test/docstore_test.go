//go:build integration_test

package test

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitjournal/internal/docstore"
)

func (s *IntegrationTestSuite) TestPsqlStore() {
	t := s.T()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://postgres@localhost:%s/%s", s.pgPort, testDBName))
	require.NoError(t, err)
	defer pool.Close()

	store := docstore.NewPsqlStore(pool)
	path := docstore.Doc("users", "psql-u1")

	_, err = store.Get(ctx, path)
	assert.ErrorIs(t, err, docstore.ErrDocumentNotFound)
	assert.ErrorIs(t, store.Update(ctx, path, map[string]any{"name": "x"}), docstore.ErrDocumentNotFound)

	require.NoError(t, store.Set(ctx, path, map[string]any{"name": "Ana", "novatoCompletedDates": []string{"2026-10-01"}}, docstore.SetOptions{}))
	require.NoError(t, store.Set(ctx, path, map[string]any{"age": 30}, docstore.SetOptions{Merge: true}))
	// arrays are replaced wholesale
	require.NoError(t, store.Update(ctx, path, map[string]any{"novatoCompletedDates": []string{"2026-10-02"}}))
	assert.ErrorIs(t, store.Create(ctx, path, map[string]any{}), docstore.ErrDocumentExists)

	snapshot, err := store.Get(ctx, path)
	require.NoError(t, err)
	var doc struct {
		Name  string   `json:"name"`
		Age   int      `json:"age"`
		Dates []string `json:"novatoCompletedDates"`
	}
	require.NoError(t, snapshot.DataTo(&doc))
	assert.Equal(t, "Ana", doc.Name)
	assert.Equal(t, 30, doc.Age)
	assert.Equal(t, []string{"2026-10-02"}, doc.Dates)

	collection := docstore.Doc("users", "psql-u1", "customRoutines")
	for i, name := range []string{"b", "c", "a"} {
		require.NoError(t, store.Create(ctx, docstore.Doc(collection, fmt.Sprintf("r%d", i)), map[string]any{"name": name}))
	}
	snapshots, err := store.List(ctx, collection, docstore.OrderBy{Field: "name", Desc: true})
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, "r1", snapshots[0].ID)
	assert.Equal(t, "r2", snapshots[2].ID)

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Get(ctx, path)
	assert.ErrorIs(t, err, docstore.ErrDocumentNotFound)
}
