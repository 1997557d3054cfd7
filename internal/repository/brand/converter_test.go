package repository

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"catalogcore/internal/model"
)

func TestBrandEntityRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	params := model.CreateBrandParams{
		Name:        gofakeit.Company(),
		Description: gofakeit.Sentence(5),
		LogoURL:     gofakeit.URL(),
	}

	e := EntityFromParams(params, "brand-1", now)
	require.NotNil(t, e)
	assert.Equal(t, "brand-1", e.ID)
	assert.Equal(t, now, e.CreatedAt)
	assert.Equal(t, now, e.UpdatedAt)

	m := EntityToModel(e)
	assert.Equal(t, params.Name, m.Name)
	assert.Equal(t, params.Description, m.Description)
	assert.Equal(t, params.LogoURL, m.LogoURL)
}

func TestBrandEntityToModelNil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, model.Brand{}, EntityToModel(nil))
}

func TestBuildPatchUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	name := "Acme Corp"
	logo := "https://cdn.example.com/acme-v2.png"

	type testCase struct {
		name  string
		patch model.BrandPatch
		want  bson.M
	}

	tests := []testCase{
		{
			name:  "empty patch still refreshes updated_at",
			patch: model.BrandPatch{},
			want:  bson.M{"updated_at": now},
		},
		{
			name:  "single field",
			patch: model.BrandPatch{Name: &name},
			want:  bson.M{"updated_at": now, "name": name},
		},
		{
			name:  "multiple fields",
			patch: model.BrandPatch{Name: &name, LogoURL: &logo},
			want:  bson.M{"updated_at": now, "name": name, "logo_url": logo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildPatchUpdate(tt.patch, now)
			require.Contains(t, got, "$set")
			assert.Equal(t, tt.want, got["$set"])
		})
	}
}
