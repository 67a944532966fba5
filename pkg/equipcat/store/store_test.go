package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dm329/equipcat/pkg/equipcat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testEntries() []models.CatalogEntry {
	return []models.CatalogEntry{
		{
			TipoExcel:           "Serbatoio aria verticale",
			TipoApparecchiatura: "Serbatoi",
			Marca:               "Atlas",
			Modello:             "LV 500",
			Specs:               &models.Specs{Volume: "500", Pressione: "11"},
		},
		{TipoExcel: "Compressore", TipoApparecchiatura: "Compressori", Marca: "Atlas", Modello: "GA 30"},
		{TipoExcel: "Filtro", TipoApparecchiatura: "Filtri", Marca: "Bosch", Modello: "F 10"},
	}
}

func TestUpsertInsertsThenUpdates(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	res, err := st.Upsert(ctx, testEntries(), 2)
	require.NoError(t, err)
	assert.Equal(t, UpsertResult{Inserted: 3}, res)

	updated := testEntries()
	updated[1].TipoExcel = "Compressore con essiccatore integrato"
	updated = append(updated, models.CatalogEntry{
		TipoExcel: "Filtro", TipoApparecchiatura: "Filtri", Marca: "Bosch", Modello: "F 20",
	})

	res, err = st.Upsert(ctx, updated, 0)
	require.NoError(t, err)
	assert.Equal(t, UpsertResult{Inserted: 1, Updated: 3}, res)

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	active, err := st.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, active)

	recs, err := st.ListByForm(ctx, "Compressori")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Compressore con essiccatore integrato", recs[0].Tipo)
	assert.True(t, recs[0].IsActive)
	assert.False(t, recs[0].IsUserDefined)
}

func TestListByFormRoundTripsEntries(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, err := st.Upsert(ctx, testEntries(), DefaultBatchSize)
	require.NoError(t, err)

	recs, err := st.ListByForm(ctx, "")
	require.NoError(t, err)
	require.Len(t, recs, 3)

	var entries []models.CatalogEntry
	for _, rec := range recs {
		assert.NotEmpty(t, rec.ID.String())
		e, err := rec.Entry()
		require.NoError(t, err)
		entries = append(entries, e)
	}

	// Ordered by form category, then brand and model.
	assert.Equal(t, "Compressori", entries[0].TipoApparecchiatura)
	assert.Equal(t, "Filtri", entries[1].TipoApparecchiatura)
	assert.Equal(t, testEntries()[0], entries[2])
	assert.Nil(t, entries[0].Specs)
}

func TestUpsertEmpty(t *testing.T) {
	st := openTestStore(t)

	res, err := st.Upsert(context.Background(), nil, DefaultBatchSize)
	require.NoError(t, err)
	assert.Equal(t, UpsertResult{}, res)
}

func TestCountActiveSkipsInactiveRows(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, err := st.Upsert(ctx, testEntries(), DefaultBatchSize)
	require.NoError(t, err)
	_, err = st.db.ExecContext(ctx, `UPDATE equipment_catalog SET is_active = 0 WHERE marca = ?`, "Bosch")
	require.NoError(t, err)

	active, err := st.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, active)

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
