package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waqarulwahab/autoport/internal/client/models"
)

// memRepo is an in-memory metadata.Repository for tests.
type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}
func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memRepo) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

func TestStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemRepo())

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)

	state, err := store.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, state)

	want := &models.Session{Token: "tok-1", Email: "alice@example.org", FirstName: "Alice"}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	state, err = store.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, state)
	require.Equal(t, "tok-1", store.Token(ctx))

	require.NoError(t, store.Clear(ctx))
	state, err = store.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, state)
	require.Equal(t, "", store.Token(ctx))
}

func TestStore_EmptyTokenIsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemRepo())

	require.NoError(t, store.Save(ctx, &models.Session{Email: "bob@example.org"}))
	state, err := store.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, state)
}

func TestStore_DashboardRefreshFlag(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemRepo())

	got, err := store.ConsumeDashboardRefresh(ctx)
	require.NoError(t, err)
	require.False(t, got)

	require.NoError(t, store.RequestDashboardRefresh(ctx))

	got, err = store.ConsumeDashboardRefresh(ctx)
	require.NoError(t, err)
	require.True(t, got)

	// Consumed: second read is false.
	got, err = store.ConsumeDashboardRefresh(ctx)
	require.NoError(t, err)
	require.False(t, got)
}

func TestStore_ResetDropsSessionAndFlags(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemRepo())

	require.NoError(t, store.Save(ctx, &models.Session{Token: "tok-1"}))
	require.NoError(t, store.RequestDashboardRefresh(ctx))

	require.NoError(t, store.Reset(ctx))

	state, err := store.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, state)

	refresh, err := store.ConsumeDashboardRefresh(ctx)
	require.NoError(t, err)
	require.False(t, refresh, "reset must drop transient flags too")
}
