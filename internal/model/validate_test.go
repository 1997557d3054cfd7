package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBrandParamsValidate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		params  CreateBrandParams
		wantErr string
	}

	tests := []testCase{
		{
			name: "valid",
			params: CreateBrandParams{
				Name:        "Acme",
				Description: "tools",
				LogoURL:     "https://cdn.example.com/acme.png",
			},
		},
		{
			name: "blank name",
			params: CreateBrandParams{
				Name:        "   ",
				Description: "tools",
				LogoURL:     "https://cdn.example.com/acme.png",
			},
			wantErr: "brand name is required",
		},
		{
			name: "logo url without scheme",
			params: CreateBrandParams{
				Name:        "Acme",
				Description: "tools",
				LogoURL:     "cdn.example.com/acme.png",
			},
			wantErr: "valid url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCreateItemParamsValidate(t *testing.T) {
	t.Parallel()

	valid := CreateItemParams{
		Name: "Serum",
		Variants: []VariantParams{
			{Name: "30ml", ImportPrice: 8.5, Price: 19.9, StockQty: 4},
		},
	}

	type testCase struct {
		name    string
		mutate  func(p CreateItemParams) CreateItemParams
		wantErr string
	}

	tests := []testCase{
		{
			name:   "valid",
			mutate: func(p CreateItemParams) CreateItemParams { return p },
		},
		{
			name: "no variants",
			mutate: func(p CreateItemParams) CreateItemParams {
				p.Variants = nil
				return p
			},
			wantErr: "at least one variant",
		},
		{
			name: "blank variant name",
			mutate: func(p CreateItemParams) CreateItemParams {
				p.Variants = []VariantParams{{Name: " ", Price: 1}}
				return p
			},
			wantErr: "variant 0: name is required",
		},
		{
			name: "negative price",
			mutate: func(p CreateItemParams) CreateItemParams {
				p.Variants = []VariantParams{{Name: "30ml", Price: -1}}
				return p
			},
			wantErr: "price must be non-negative",
		},
		{
			name: "negative import price",
			mutate: func(p CreateItemParams) CreateItemParams {
				p.Variants = []VariantParams{{Name: "30ml", ImportPrice: -0.5, Price: 1}}
				return p
			},
			wantErr: "import price must be non-negative",
		},
		{
			name: "negative stock",
			mutate: func(p CreateItemParams) CreateItemParams {
				p.Variants = []VariantParams{{Name: "30ml", Price: 1, StockQty: -3}}
				return p
			},
			wantErr: "stock quantity must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.mutate(valid).Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestItemPatchValidate(t *testing.T) {
	t.Parallel()

	t.Run("nil variants means unchanged", func(t *testing.T) {
		t.Parallel()
		name := "Serum"
		require.NoError(t, ItemPatch{Name: &name}.Validate())
	})

	t.Run("empty replacement list is rejected", func(t *testing.T) {
		t.Parallel()
		err := ItemPatch{Variants: []VariantParams{}}.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("replacement variants are validated", func(t *testing.T) {
		t.Parallel()
		err := ItemPatch{Variants: []VariantParams{{Name: "", Price: -1}}}.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "name is required")
	})
}

func TestPatchEmpty(t *testing.T) {
	t.Parallel()

	name := "x"
	read := true

	assert.True(t, BrandPatch{}.Empty())
	assert.False(t, BrandPatch{Name: &name}.Empty())

	assert.True(t, CategoryPatch{}.Empty())
	assert.True(t, NotificationPatch{}.Empty())
	assert.False(t, NotificationPatch{IsRead: &read}.Empty())

	assert.True(t, ItemPatch{}.Empty())
	assert.False(t, ItemPatch{Media: []MediaParams{}}.Empty())
}
