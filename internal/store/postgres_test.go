package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/persistorai/degrees/internal/store"
)

func TestPostgres_ImportThenLoad(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	src := store.SourceConfig{Kind: store.SourcePostgres, DatabaseURL: dbURL}
	want := sampleDataset(t)

	require.NoError(t, store.Import(ctx, src, want, testLogger()))

	loaded, err := store.Load(ctx, src, testLogger())
	require.NoError(t, err)
	defer loaded.Close()

	requireSameDataset(t, want, loaded.Dataset)
	assert.Equal(t, "postgres", loaded.Report.Source)
	require.NotNil(t, loaded.Pinger)
	assert.NoError(t, loaded.Pinger.HealthCheck(ctx))
}
