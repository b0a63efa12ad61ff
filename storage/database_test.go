package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhaatuTheGamer/seamless-qr-dining/storage"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	m.Run()
}

func setupBackend(t *testing.T) *storage.DatabaseBackend {
	t.Helper()
	// A named shared in-memory database so each test gets its own instance
	// while extra connections still see the same data.
	db, err := storage.OpenDatabase("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	backend, err := storage.NewDatabaseBackend(db)
	require.NoError(t, err)
	backend.SetPollInterval(20 * time.Millisecond)
	return backend
}

func TestGetSetRoundTrip(t *testing.T) {
	backend := setupBackend(t)
	ctx := context.Background()

	_, err := backend.Get(ctx, storage.KeyOrders)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	payload := []byte(`[{"id":"o1","tableId":"t1"}]`)
	require.NoError(t, backend.Set(ctx, storage.KeyOrders, payload))

	got, err := backend.Get(ctx, storage.KeyOrders)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))

	// Overwrite replaces the whole record.
	updated := []byte(`[]`)
	require.NoError(t, backend.Set(ctx, storage.KeyOrders, updated))
	got, err = backend.Get(ctx, storage.KeyOrders)
	require.NoError(t, err)
	assert.JSONEq(t, string(updated), string(got))
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := storage.OpenDatabase("postgres", "dsn")
	assert.Error(t, err)
}

func TestWatchSeesOtherWriters(t *testing.T) {
	backend := setupBackend(t)

	// A second backend over the same database acts as another process.
	other, err := storage.NewDatabaseBackend(backend.DB())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := backend.Watch(ctx)
	require.NoError(t, err)

	payload := []byte(`[{"id":"r1","tableId":"t2","type":"water"}]`)
	require.NoError(t, other.Set(ctx, storage.KeyServiceRequests, payload))

	select {
	case change := <-changes:
		assert.Equal(t, storage.KeyServiceRequests, change.Key)
		assert.JSONEq(t, string(payload), string(change.Value))
	case <-time.After(3 * time.Second):
		t.Fatal("change from other writer never arrived")
	}
}

func TestWatchIgnoresOwnWrites(t *testing.T) {
	backend := setupBackend(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := backend.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, backend.Set(ctx, storage.KeyOrders, []byte(`[]`)))

	select {
	case change := <-changes:
		t.Fatalf("own write surfaced as external change: %+v", change)
	case <-time.After(300 * time.Millisecond):
	}
}
