package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"catalogcore/internal/model"
)

func TestItemEntityFromParams(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	params := model.CreateItemParams{
		Name:     "Serum",
		Supplier: "Acme Supply",
		BrandID:  "brand-1",
		Media: []model.MediaParams{
			{URL: "https://cdn.example.com/1.jpg"},
			{URL: "https://cdn.example.com/2.jpg"},
			{URL: "https://cdn.example.com/3.jpg", Order: 7},
		},
		Variants: []model.VariantParams{
			{Name: "30ml", ImportPrice: 8.5, Price: 19.9, StockQty: 4},
			{Name: "100ml", ImportPrice: 20, Price: 49.9, StockQty: 6},
		},
	}

	e := EntityFromParams(params, "item-1", now)
	require.NotNil(t, e)
	assert.Equal(t, "item-1", e.ID)

	// Embedded sub-records get client-generated ids.
	require.Len(t, e.Variants, 2)
	assert.NotEmpty(t, e.Variants[0].ID)
	assert.NotEqual(t, e.Variants[0].ID, e.Variants[1].ID)
	assert.Equal(t, now, e.Variants[0].CreatedAt)

	// Media order defaults to the slice position unless set explicitly.
	require.Len(t, e.Media, 3)
	assert.Equal(t, 0, e.Media[0].Order)
	assert.Equal(t, 1, e.Media[1].Order)
	assert.Equal(t, 7, e.Media[2].Order)
	assert.Equal(t, model.MediaTypeImage, e.Media[0].Type)
}

func TestItemBuildPatchUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("nil slices are not part of the update", func(t *testing.T) {
		t.Parallel()

		name := "Serum Plus"
		got := BuildPatchUpdate(model.ItemPatch{Name: &name}, now)

		require.Contains(t, got, "$set")
		set, ok := got["$set"].(bson.M)
		require.True(t, ok)

		assert.Equal(t, name, set["name"])
		assert.Equal(t, now, set["updated_at"])
		assert.NotContains(t, set, "variants")
		assert.NotContains(t, set, "media")
	})

	t.Run("non-nil variants replace the owned list", func(t *testing.T) {
		t.Parallel()

		got := BuildPatchUpdate(model.ItemPatch{
			Variants: []model.VariantParams{{Name: "50ml", Price: 29.9, StockQty: 7}},
		}, now)

		set, ok := got["$set"].(bson.M)
		require.True(t, ok)

		variants, ok := set["variants"].([]VariantEntity)
		require.True(t, ok)
		require.Len(t, variants, 1)
		assert.Equal(t, "50ml", variants[0].Name)
		assert.NotEmpty(t, variants[0].ID)
	})
}
