//go:build unit

package store_test

import (
	"testing"

	"storeslot/internal/domain/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	ownerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		s, err := store.NewStore(ownerID, "Ramen Kaminari", "Shibuya", "Tonkotsu specialist")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, ownerID, s.OwnerID())
		assert.Equal(t, "Ramen Kaminari", s.Name())
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		s, err := store.NewStore(ownerID, "  Ramen Kaminari  ", " Shibuya ", " Tonkotsu specialist ")
		require.NoError(t, err)
		assert.Equal(t, "Ramen Kaminari", s.Name())
		assert.Equal(t, "Shibuya", s.Location())
		assert.Equal(t, "Tonkotsu specialist", s.Description())
	})

	cases := []struct {
		name        string
		storeName   string
		location    string
		description string
		errIs       error
	}{
		{name: "empty name", storeName: " ", location: "Shibuya", description: "desc", errIs: store.ErrEmptyName},
		{name: "empty location", storeName: "Ramen Kaminari", location: "", description: "desc", errIs: store.ErrEmptyLocation},
		{name: "empty description", storeName: "Ramen Kaminari", location: "Shibuya", description: "  ", errIs: store.ErrEmptyDescription},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.NewStore(ownerID, tc.storeName, tc.location, tc.description)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestRename(t *testing.T) {
	s, err := store.NewStore(uuid.New(), "Old Name", "Old Location", "Old description")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		require.NoError(t, s.Rename("New Name", "New Location", "New description"))
		assert.Equal(t, "New Name", s.Name())
		assert.Equal(t, "New Location", s.Location())
		assert.Equal(t, "New description", s.Description())
	})

	t.Run("empty name keeps current values", func(t *testing.T) {
		err := s.Rename("", "Another Location", "Another description")
		assert.ErrorIs(t, err, store.ErrEmptyName)
		assert.Equal(t, "New Name", s.Name())
		assert.Equal(t, "New Location", s.Location())
	})
}

func TestIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	s, err := store.NewStore(ownerID, "Ramen Kaminari", "Shibuya", "Tonkotsu specialist")
	require.NoError(t, err)

	assert.True(t, s.IsOwnedBy(ownerID))
	assert.False(t, s.IsOwnedBy(uuid.New()))
}
