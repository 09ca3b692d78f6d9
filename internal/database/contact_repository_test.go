package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/alphaslider/internal/database"
	"github.com/thenoetrevino/alphaslider/internal/models"
	"github.com/thenoetrevino/alphaslider/internal/testutil"
)

func TestAddAndListContacts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewContactRepo(db)
	ctx := context.Background()

	for _, name := range []string{"zoe", "Bob", "alice", "Alan"} {
		_, err := repo.AddContact(ctx, name, "")
		require.NoError(t, err)
	}

	contacts, err := repo.ListContacts(ctx)
	require.NoError(t, err)

	var names []string
	for _, c := range contacts {
		names = append(names, c.Name)
	}
	// Ordered case-insensitively
	assert.Equal(t, []string{"Alan", "alice", "Bob", "zoe"}, names)
}

func TestAddContact_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewContactRepo(db)

	_, err := repo.AddContact(context.Background(), "   ", "detail")
	assert.ErrorIs(t, err, models.ErrEmptyName)

	contact, err := repo.AddContact(context.Background(), "  Grace Hopper ", " grace@navy.example ")
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", contact.Name)
	assert.Equal(t, "grace@navy.example", contact.Detail)
	assert.NotZero(t, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestDeleteContact(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewContactRepo(db)
	ctx := context.Background()

	contact, err := repo.AddContact(ctx, "Ken Thompson", "")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteContact(ctx, contact.ID))

	_, err = repo.GetContact(ctx, contact.ID)
	assert.ErrorIs(t, err, models.ErrContactNotFound)

	err = repo.DeleteContact(ctx, contact.ID)
	assert.ErrorIs(t, err, models.ErrContactNotFound)
}

func TestInitDB_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contacts.db")

	db, err := database.InitDB(ctx, path)
	require.NoError(t, err)

	repo := database.NewContactRepo(db)
	count, err := repo.CountContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(database.SeedContacts), count)

	_, err = repo.AddContact(ctx, "Extra Person", "")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not seed again
	db, err = database.InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	count, err = database.NewContactRepo(db).CountContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(database.SeedContacts)+1, count)
}
