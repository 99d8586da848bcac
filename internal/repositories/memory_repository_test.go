package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelstar/internal/models/db_models"
)

func TestMemoryStoreAccounts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Create(ctx, &db_models.Account{Username: "alice", PasswordHash: "hash"}))
	assert.ErrorIs(t, store.Create(ctx, &db_models.Account{Username: "alice", PasswordHash: "other"}), ErrDuplicateKey)

	account, err := store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", account.PasswordHash)

	missing, err := store.FindByUsername(ctx, "bob")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStorePlans(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, &db_models.Account{Username: "alice"}))
	require.NoError(t, store.Create(ctx, &db_models.Account{Username: "bob"}))

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	older := &db_models.TripPlan{Username: "alice", Destination: "Goa", BaseModel: db_models.BaseModel{CreatedAt: base}}
	newer := &db_models.TripPlan{Username: "alice", Destination: "Kerala", BaseModel: db_models.BaseModel{CreatedAt: base.Add(time.Hour)}}
	// inserted out of order on purpose
	require.NoError(t, store.Insert(ctx, newer))
	require.NoError(t, store.Insert(ctx, older))
	require.NoError(t, store.Insert(ctx, &db_models.TripPlan{Username: "bob", Destination: "Paris"}))

	assert.NotEqual(t, uuid.Nil, older.ID)

	plans, err := store.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Kerala", plans[0].Destination)
	assert.Equal(t, "Goa", plans[1].Destination)

	empty, err := store.ListByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	found, err := store.FindByID(ctx, "alice", older.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goa", found.Destination)

	other, err := store.FindByID(ctx, "bob", older.ID)
	assert.NoError(t, err)
	assert.Nil(t, other)

	assert.ErrorIs(t, store.Insert(ctx, &db_models.TripPlan{Username: "ghost"}), ErrAccountNotFound)
}
