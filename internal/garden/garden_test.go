package garden

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Preserves Insertion Order", func(t *testing.T) {
		inv, err := New([]Entry{
			{Name: "roses", Count: 9},
			{Name: "basil", Count: 6},
		})
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Name: "roses", Count: 9},
			{Name: "basil", Count: 6},
		}, inv.Entries())
	})

	t.Run("Rejects Duplicate Names", func(t *testing.T) {
		_, err := New([]Entry{
			{Name: "roses", Count: 9},
			{Name: "roses", Count: 2},
		})
		assert.ErrorIs(t, err, ErrDuplicateKey)

		var dup *DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "roses", dup.Name)
	})

	t.Run("Rejects Negative Counts", func(t *testing.T) {
		_, err := New([]Entry{{Name: "roses", Count: -1}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Empty Inventory", func(t *testing.T) {
		inv, err := New(nil)
		require.NoError(t, err)
		assert.Zero(t, inv.Len())

		_, ok := inv.CountOf("roses")
		assert.False(t, ok)
	})
}

func TestCountOf(t *testing.T) {
	entries, err := Seed()
	require.NoError(t, err)

	inv, err := New(entries)
	require.NoError(t, err)

	count, ok := inv.CountOf("roses")
	assert.True(t, ok)
	assert.Equal(t, 9, count)

	_, ok = inv.CountOf("tulips")
	assert.False(t, ok)
}

func TestSeed(t *testing.T) {
	entries, err := Seed()
	require.NoError(t, err)
	require.Len(t, entries, 6)

	// First entry is the roses literal from the seed document.
	assert.Equal(t, Entry{Name: "roses", Count: 9}, entries[0])

	// The seed must always construct cleanly.
	_, err = New(entries)
	assert.NoError(t, err)
}
