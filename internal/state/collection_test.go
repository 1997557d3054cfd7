package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogcore/internal/model"
)

func newBrandCollection(seed ...model.Brand) *Collection[model.Brand] {
	c := NewCollection(func(b model.Brand) string { return b.ID })
	if len(seed) > 0 {
		c.Resolve(context.Background(), func([]model.Brand) []model.Brand { return seed })
	}
	return c
}

func TestCollectionTransitions(t *testing.T) {
	t.Parallel()

	t.Run("begin sets pending and clears the previous error", func(t *testing.T) {
		t.Parallel()

		c := newBrandCollection()
		c.Begin()
		c.Fail(context.Background(), errors.New("boom"))
		require.Equal(t, "boom", c.Err())

		c.Begin()
		assert.True(t, c.Loading())
		assert.Empty(t, c.Err())
	})

	t.Run("resolve replaces items and ends the pending phase", func(t *testing.T) {
		t.Parallel()

		c := newBrandCollection()
		c.Begin()
		c.Resolve(context.Background(), func([]model.Brand) []model.Brand {
			return []model.Brand{{ID: "b-1"}}
		})

		assert.False(t, c.Loading())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("resolve normalizes a nil result to an empty mirror", func(t *testing.T) {
		t.Parallel()

		c := newBrandCollection(model.Brand{ID: "b-1"})
		c.Resolve(context.Background(), func([]model.Brand) []model.Brand { return nil })

		assert.NotNil(t, c.Items())
		assert.Zero(t, c.Len())
	})

	t.Run("fail keeps the stale items", func(t *testing.T) {
		t.Parallel()

		c := newBrandCollection(model.Brand{ID: "b-1"})
		c.Begin()
		c.Fail(context.Background(), errors.New("remote down"))

		assert.Equal(t, 1, c.Len())
		assert.Equal(t, "remote down", c.Err())
		assert.False(t, c.Loading())
	})

	t.Run("done context drops both resolve and fail", func(t *testing.T) {
		t.Parallel()

		c := newBrandCollection(model.Brand{ID: "b-1"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c.Begin()
		c.Resolve(ctx, func([]model.Brand) []model.Brand { return nil })
		assert.Equal(t, 1, c.Len())

		c.Fail(ctx, errors.New("late failure"))
		assert.Empty(t, c.Err())
	})

	t.Run("items returns a copy", func(t *testing.T) {
		t.Parallel()

		c := newBrandCollection(model.Brand{ID: "b-1", Name: "Acme"})

		got := c.Items()
		got[0].Name = "mutated"

		assert.Equal(t, "Acme", c.Items()[0].Name)
	})
}

func TestCollectionSelection(t *testing.T) {
	t.Parallel()

	c := newBrandCollection(
		model.Brand{ID: "b-1", Name: "Acme"},
		model.Brand{ID: "b-2", Name: "Globex"},
	)

	_, ok := c.Selected()
	assert.False(t, ok)

	require.True(t, c.Select("b-2"))
	sel, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Globex", sel.Name)

	assert.False(t, c.Select("b-missing"))
	// A failed select keeps the previous selection.
	sel, ok = c.Selected()
	require.True(t, ok)
	assert.Equal(t, "b-2", sel.ID)

	c.ClearSelection()
	_, ok = c.Selected()
	assert.False(t, ok)
}
